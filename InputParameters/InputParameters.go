package InputParameters

import (
	"errors"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/notargets/advect1d/FD1D"
	"github.com/notargets/advect1d/limiters"
	"github.com/notargets/advect1d/model_problems/Advection1D"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title       string  `yaml:"Title"`
	Scheme      string  `yaml:"Scheme"`
	Limiter     string  `yaml:"Limiter"`
	Beta        float64 `yaml:"Beta"` // Sweby limiter parameter
	Epsilon     float64 `yaml:"Epsilon"`
	Velocity    float64 `yaml:"Velocity"`
	XMin        float64 `yaml:"XMin"`
	XMax        float64 `yaml:"XMax"`
	Cells       int     `yaml:"Cells"`
	Steps       int     `yaml:"Steps"`
	Revolutions int     `yaml:"Revolutions"`
	InitType    string  `yaml:"InitType"`
	Height      float64 `yaml:"Height"`
	Width       float64 `yaml:"Width"`
	Center      float64 `yaml:"Center"`
}

var ErrBadParameter = errors.New("InputParameters: invalid parameter")

func Defaults() *InputParameters1D {
	return &InputParameters1D{
		Title:       "Advection of a tophat",
		Scheme:      "flux-limiter",
		Limiter:     "minmod",
		Beta:        limiters.DefaultSwebyBeta,
		Epsilon:     Advection1D.DefaultEpsilon,
		Velocity:    1,
		XMin:        0,
		XMax:        1,
		Cells:       100,
		Steps:       1000,
		Revolutions: 1,
		InitType:    "tophat",
		Height:      1,
		Width:       0.2,
		Center:      0.5,
	}
}

// Parse overlays the YAML document on ip, fields absent from data keep their current value
func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Validate checks the names and the grid, returning the first problem found
func (ip *InputParameters1D) Validate() (err error) {
	if _, err = Advection1D.NewSchemeType(ip.Scheme); err != nil {
		return
	}
	if _, err = limiters.NewLimiterType(ip.Limiter); err != nil {
		return
	}
	if _, err = FD1D.NewInitType(ip.InitType); err != nil {
		return
	}
	if ip.Epsilon <= 0 {
		return fmt.Errorf("epsilon = %v must be positive: %w", ip.Epsilon, ErrBadParameter)
	}
	if ip.Width <= 0 {
		return fmt.Errorf("width = %v must be positive: %w", ip.Width, ErrBadParameter)
	}
	_, err = ip.Grid()
	return
}

func (ip *InputParameters1D) Grid() (*FD1D.Grid, error) {
	return FD1D.NewGrid(ip.Velocity, ip.XMin, ip.XMax, ip.Cells, ip.Revolutions, ip.Steps)
}

func (ip *InputParameters1D) InitialCondition() (u0 FD1D.Function, err error) {
	var (
		it FD1D.InitType
	)
	if it, err = FD1D.NewInitType(ip.InitType); err != nil {
		return
	}
	u0 = it.Profile(ip.Height, ip.Width, ip.Center)
	return
}

// NewScheme builds the configured scheme, the limiter settings only apply to the flux limiter scheme
func (ip *InputParameters1D) NewScheme() (scheme Advection1D.Scheme, err error) {
	var (
		st Advection1D.SchemeType
		lt limiters.LimiterType
	)
	if st, err = Advection1D.NewSchemeType(ip.Scheme); err != nil {
		return
	}
	if st != Advection1D.SCHEME_FluxLimiter {
		scheme = Advection1D.NewScheme(st)
		return
	}
	if lt, err = limiters.NewLimiterType(ip.Limiter); err != nil {
		return
	}
	scheme = Advection1D.NewFluxLimiter(lt.Func(), limiters.Params{"beta": ip.Beta}, ip.Epsilon)
	return
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Scheme\n", ip.Scheme)
	if st, err := Advection1D.NewSchemeType(ip.Scheme); err == nil && st == Advection1D.SCHEME_FluxLimiter {
		fmt.Printf("[%s]\t\t\t= Limiter\n", ip.Limiter)
		fmt.Printf("%8.5f\t\t= Beta\n", ip.Beta)
		fmt.Printf("%8.2e\t\t= Epsilon\n", ip.Epsilon)
	}
	fmt.Printf("%8.5f\t\t= Velocity\n", ip.Velocity)
	fmt.Printf("[%8.5f, %8.5f)\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("[%d]\t\t\t\t= Cells\n", ip.Cells)
	fmt.Printf("[%d]\t\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("[%d]\t\t\t\t= Revolutions\n", ip.Revolutions)
	fmt.Printf("[%s]\t\t\t= InitType\n", ip.InitType)
	fmt.Printf("%8.5f, %8.5f, %8.5f\t= Height, Width, Center\n", ip.Height, ip.Width, ip.Center)
}
