// Package lightray renders the light ray sprite used by the lighthouse game.
//
// # Overview
//
// The sprite is a 100x300 pixel rectangle of pale yellow (255, 255, 100)
// whose opacity falls linearly from fully opaque on the top row to fully
// transparent on the bottom row. Each row has a single uniform color.
//
// # Quick Start
//
//	import "github.com/pharos-game/lightray"
//
//	if err := lightray.DefaultRay().Save(lightray.OutputPath); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pixel format
//
// [Pixmap] stores straight (non-premultiplied) alpha, and rows are filled by
// copying bytes rather than compositing. The PNG written by [Pixmap.SavePNG]
// therefore holds exactly the values computed by [RowAlpha], which is
// required for byte-identical output across runs.
//
// # Logging
//
// The package is silent by default. Install a [log/slog] logger with
// [SetLogger] to see debug output.
package lightray
