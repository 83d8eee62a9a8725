package colorcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackRGBIsExact(t *testing.T) {
	c := Default().Pack(10, 20, 30, ModeRGB)
	require.Equal(t, Color(0xFF0A141E), c)

	r, g, b := Default().Unpack(c, ModeRGB)
	require.Equal(t, []int{10, 20, 30}, []int{r, g, b})
}

func TestPackClampsComponents(t *testing.T) {
	c := Default().Pack(-5, 300, 128, ModeRGB)
	r, g, b := c.RGB()
	require.Equal(t, []uint8{0, 255, 128}, []uint8{r, g, b})
}

func TestHSBPrimaries(t *testing.T) {
	codec := Default()

	red := codec.Pack(0, 255, 255, ModeHSB)
	require.Equal(t, "#ff0000", red.Hex())

	// a full turn of hue lands back on red
	wrapped := codec.Pack(255, 255, 255, ModeHSB)
	require.Equal(t, red, wrapped)

	black := codec.Pack(0, 0, 0, ModeHSB)
	require.Equal(t, "#000000", black.Hex())

	white := codec.Pack(0, 0, 255, ModeHSB)
	require.Equal(t, "#ffffff", white.Hex())
}

func TestUnpackHSB(t *testing.T) {
	codec := Default()

	h, s, b := codec.Unpack(FromRGB(128, 0, 0), ModeHSB)
	require.Equal(t, []int{0, 255, 128}, []int{h, s, b})

	h, s, b = codec.Unpack(FromRGB(255, 255, 255), ModeHSB)
	require.Equal(t, []int{0, 0, 255}, []int{h, s, b})

	h, s, b = codec.Unpack(FromRGB(0, 0, 0), ModeHSB)
	require.Equal(t, []int{0, 0, 0}, []int{h, s, b})
}

func TestModeLetters(t *testing.T) {
	require.Equal(t, [3]string{"R", "G", "B"}, ModeRGB.Letters())
	require.Equal(t, [3]string{"H", "S", "B"}, ModeHSB.Letters())
	require.False(t, Mode(0).Valid())
	require.False(t, Mode(7).Valid())
	require.Equal(t, "hsb", ModeHSB.String())
}

func TestUnknownModePacksBlack(t *testing.T) {
	c := Default().Pack(12, 34, 56, Mode(9))
	require.Equal(t, Color(0xFF000000), c)
	a, b, d := Default().Unpack(c, Mode(9))
	require.Zero(t, a+b+d)
}

func TestUnpackHSBPacksBackExactly(t *testing.T) {
	codec := Default()
	for h := 0; h < 256; h += 3 {
		for s := 0; s < 256; s += 5 {
			for v := 0; v < 256; v += 5 {
				c := codec.Pack(h, s, v, ModeHSB)
				h2, s2, v2 := codec.Unpack(c, ModeHSB)
				require.Equal(t, c, codec.Pack(h2, s2, v2, ModeHSB), "hsb(%d,%d,%d)", h, s, v)
				require.Less(t, h2, 255, "hue must wrap before 255")
			}
		}
	}
}

func TestUnpackHSBLowSaturationIsStable(t *testing.T) {
	codec := Default()
	c := codec.Pack(3, 20, 235, ModeHSB)

	h, s, v := codec.Unpack(c, ModeHSB)
	require.Equal(t, c, codec.Pack(h, s, v, ModeHSB))

	h2, s2, v2 := codec.Unpack(codec.Pack(h, s, v, ModeHSB), ModeHSB)
	require.Equal(t, []int{h, s, v}, []int{h2, s2, v2})
}

func TestUnpackHSBForeignColor(t *testing.T) {
	// any opaque color still decodes to in-range components
	h, s, v := Default().Unpack(FromRGB(1, 2, 200), ModeHSB)
	for _, x := range []int{h, s, v} {
		require.GreaterOrEqual(t, x, 0)
		require.LessOrEqual(t, x, 255)
	}
	require.Equal(t, 200, v)
}
