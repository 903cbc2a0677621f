package utils

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

func SleepFor(milliseconds int) {
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}

type LineChart struct {
	Chart    *chart2d.Chart2D
	ColorMap *utils2.ColorMap
}

func NewLineChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LineChart) {
	lc = &LineChart{
		Chart:    chart2d.NewChart2D(width, height, float32(xmin), float32(xmax), float32(fmin), float32(fmax)),
		ColorMap: utils2.NewColorMap(-1, 1, 1),
	}
	go lc.Chart.Plot()
	return
}

func (lc *LineChart) Plot(graphDelay time.Duration, x, f []float64, lineColor float64, lineName string) {
	/*
		lineColor goes from -1 (red) to 1 (blue)
	*/
	lc.plotSeries(x, f, lineName, float32(lineColor), chart2d.NoGlyph)
	time.Sleep(graphDelay)
}

func (lc *LineChart) PlotPoints(graphDelay time.Duration, x, f []float64, lineColor float64, lineName string) {
	lc.plotSeries(x, f, lineName, float32(lineColor), chart2d.CrossGlyph)
	time.Sleep(graphDelay)
}

func (lc *LineChart) plotSeries(x, f []float64, name string, color float32, gl chart2d.GlyphType) {
	if err := lc.Chart.AddSeries(name, x, f,
		gl, chart2d.Solid, lc.ColorMap.GetRGB(color)); err != nil {
		panic("unable to add graph series")
	}
}
