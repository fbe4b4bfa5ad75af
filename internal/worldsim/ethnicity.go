package worldsim

// regionBand maps a Y coordinate to the world's three horizontal
// assimilation bands: sky (0), mid (1), ground (2, the catch-all).
func regionBand(y int) int {
	return (y * 3) / WorldY
}
