package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Show opens a window displaying the rendered chart and blocks until the
// window is closed.
func Show(title string, img image.Image) {
	a := app.New()
	w := a.NewWindow(title)

	pic := canvas.NewImageFromImage(img)
	pic.FillMode = canvas.ImageFillContain

	w.SetContent(pic)
	w.Resize(windowSize(img))
	w.ShowAndRun()
}

// windowSize matches the window to the rendered chart so it shows 1:1
func windowSize(img image.Image) fyne.Size {
	b := img.Bounds()
	return fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
}
