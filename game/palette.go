package game

import "image/color"

// Color constants
var (
	colorBackground    = color.NRGBA{R: 3, G: 5, B: 16, A: 255}
	colorText          = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorButtonText    = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colorStartButton   = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	colorRestartButton = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	colorMenuButton    = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	colorGameOver      = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	colorOverlay       = color.NRGBA{R: 0, G: 0, B: 0, A: 180}
	colorPauseButton   = color.NRGBA{R: 255, G: 255, B: 255, A: 90}

	colorBullet        = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	colorBulletCore    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorBulletOutline = color.NRGBA{R: 255, G: 200, B: 0, A: 255}

	colorPlayerHull    = color.NRGBA{R: 180, G: 220, B: 255, A: 255}
	colorPlayerCockpit = color.NRGBA{R: 40, G: 120, B: 255, A: 255}
	colorPlayerFlame   = color.NRGBA{R: 255, G: 180, B: 60, A: 255}

	colorEnemyHull = color.NRGBA{R: 220, G: 40, B: 40, A: 255}
	colorEnemyEye  = color.NRGBA{R: 255, G: 230, B: 120, A: 255}
)

// Text sizes in logical pixels
const (
	textSizeTitle  = 80.0
	textSizeButton = 50.0
	textSizeHUD    = 40.0
)
