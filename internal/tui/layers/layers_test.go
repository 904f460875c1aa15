package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateLayers_Empty(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))
	assert.Nil(t, CreateTopRightLayer("", 80, 1))
	assert.Nil(t, CreatePointerLayer("", 1, 1, 80, 24))
	assert.NotNil(t, CreateCenteredLayer("modal", 80, 24))
}

func TestCenteredOrigin(t *testing.T) {
	x, y := centeredOrigin(10, 1, 30, 11)
	assert.Equal(t, 10, x)
	assert.Equal(t, 5, y)

	x, y = centeredOrigin(100, 50, 30, 11)
	assert.Zero(t, x, "wider than the screen pins to the left edge")
	assert.Zero(t, y)
}

func TestPointerOrigin_StaysOnScreen(t *testing.T) {
	x, y := pointerOrigin(5, 1, 10, 4, 80, 24)
	assert.Equal(t, 11, x)
	assert.Equal(t, 4, y)

	x, y = pointerOrigin(5, 1, 78, 30, 80, 24)
	assert.Equal(t, 75, x)
	assert.Equal(t, 23, y)
}
