package game

import (
	"testing"
)

func TestLoadSprites(t *testing.T) {
	sprites, err := LoadSprites()
	if err != nil {
		t.Fatalf("LoadSprites failed: %v", err)
	}

	pb := sprites.Player.Bounds()
	if pb.Dx() != int(playerWidth) || pb.Dy() != int(playerHeight) {
		t.Errorf("Expected player sprite %vx%v, got %dx%d", playerWidth, playerHeight, pb.Dx(), pb.Dy())
	}
	eb := sprites.Enemy.Bounds()
	if eb.Dx() != int(enemyWidth) || eb.Dy() != int(enemyHeight) {
		t.Errorf("Expected enemy sprite %vx%v, got %dx%d", enemyWidth, enemyHeight, eb.Dx(), eb.Dy())
	}

	// The hulls cover the middle of each sprite
	if _, _, _, a := sprites.Player.At(pb.Dx()/2, pb.Dy()/2).RGBA(); a == 0 {
		t.Errorf("Expected an opaque player hull at the center")
	}
	if _, _, _, a := sprites.Enemy.At(eb.Dx()/2, eb.Dy()/2).RGBA(); a == 0 {
		t.Errorf("Expected an opaque enemy hull at the center")
	}
	// And leave the corners clear
	if _, _, _, a := sprites.Player.At(2, 2).RGBA(); a != 0 {
		t.Errorf("Expected a transparent player corner")
	}
}

func TestNewStyle(t *testing.T) {
	style, err := NewStyle(StyleSprite)
	if err != nil {
		t.Fatalf("NewStyle(sprite) failed: %v", err)
	}
	if _, ok := style.(SpriteStyle); !ok {
		t.Errorf("Expected SpriteStyle, got %T", style)
	}

	style, err = NewStyle(StyleVector)
	if err != nil {
		t.Fatalf("NewStyle(vector) failed: %v", err)
	}
	if _, ok := style.(VectorStyle); !ok {
		t.Errorf("Expected VectorStyle, got %T", style)
	}
}
