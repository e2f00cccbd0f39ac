package spread

import "testing"

func TestNewRadialKernelValidation(t *testing.T) {
	cases := []struct {
		name string
		kind KernelType
		args [6]float64 // scale, longScale, shortFraction, windDirection, kappa; last two resolutions
	}{
		{"unknown kind", KernelType(99), [6]float64{1, 1, 0.5, 0, 0, 1}},
		{"zero scale", KernelCauchy, [6]float64{0, 1, 0.5, 0, 0, 1}},
		{"zero long scale", KernelCauchyMixture, [6]float64{1, 0, 0.5, 0, 0, 1}},
		{"fraction above one", KernelCauchyMixture, [6]float64{1, 10, 1.5, 0, 0, 1}},
		{"negative kappa", KernelCauchy, [6]float64{1, 1, 0.5, 0, -1, 1}},
		{"zero resolution", KernelCauchy, [6]float64{1, 1, 0.5, 0, 0, 0}},
	}
	for _, tc := range cases {
		ewRes := tc.args[5]
		nsRes := tc.args[5]
		_, err := NewRadialKernel(tc.kind, tc.args[0], tc.args[1], tc.args[2], tc.args[3], tc.args[4], ewRes, nsRes)
		if err == nil {
			t.Fatalf("%s: expected construction error", tc.name)
		}
	}

	if _, err := NewRadialKernel(KernelCauchy, 1.5, 0, 0, 0, 0, 30, 30); err != nil {
		t.Fatalf("valid kernel rejected: %v", err)
	}
}

func TestKernelTinyScaleStaysNearSource(t *testing.T) {
	// With a tiny scale and coarse resolution nearly every displacement
	// rounds to zero cells; only the heavy tail escapes.
	k, err := NewRadialKernel(KernelCauchy, 0.1, 0, 0, 0, 0, 1000, 1000)
	if err != nil {
		t.Fatal(err)
	}
	rng := testRand(3)
	same := 0
	const n = 1000
	for i := 0; i < n; i++ {
		row, col := k.Next(rng, 10, 20)
		if row == 10 && col == 20 {
			same++
		}
	}
	if same < n*9/10 {
		t.Fatalf("only %d/%d draws stayed on the source cell", same, n)
	}
}

func TestKernelWindBiasPushesNorth(t *testing.T) {
	// Wind direction 0 with strong concentration means displacement along
	// -rows (north); rows should not increase.
	k, err := NewRadialKernel(KernelCauchy, 5, 0, 0, 0, 200, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	rng := testRand(17)
	north := 0
	sideways := 0
	const n = 500
	for i := 0; i < n; i++ {
		row, col := k.Next(rng, 100, 100)
		if row > 100 {
			t.Fatalf("draw %d moved south to row %d under northward wind", i, row)
		}
		if row < 100 {
			north++
		}
		if col < 90 || col > 110 {
			// Heavy-tailed distances can drift sideways even under a
			// concentrated wind; they just have to stay rare.
			sideways++
		}
	}
	if north < n*8/10 {
		t.Fatalf("only %d/%d draws moved north", north, n)
	}
	if sideways > n/10 {
		t.Fatalf("%d/%d draws drifted sideways under concentrated wind", sideways, n)
	}
}

func TestMixtureShortFractionOne(t *testing.T) {
	// With the short fraction pinned at 1 the long scale never fires.
	k, err := NewRadialKernel(KernelCauchyMixture, 0.1, 1e6, 1, 0, 0, 1000, 1000)
	if err != nil {
		t.Fatal(err)
	}
	rng := testRand(23)
	same := 0
	const n = 500
	for i := 0; i < n; i++ {
		row, col := k.Next(rng, 5, 5)
		if row == 5 && col == 5 {
			same++
		}
	}
	if same < n*9/10 {
		t.Fatalf("mixture with short fraction 1 escaped source %d/%d times", n-same, n)
	}
}
