// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import "github.com/palmer-eda/eda/dataset"

// Fields of the Palmer penguins dataset.
const (
	Species         = "species"
	Island          = "island"
	Sex             = "sex"
	BillLengthMM    = "bill_length_mm"
	BillDepthMM     = "bill_depth_mm"
	FlipperLengthMM = "flipper_length_mm"
	BodyMassG       = "body_mass_g"
	Year            = "year"
)

// Measurements are the biometric columns. Year is numeric but is not
// a measurement, so it is left out.
var Measurements = []string{BillLengthMM, BillDepthMM, FlipperLengthMM, BodyMassG}

// PenguinSchema returns the schema of the Palmer penguins CSV.
func PenguinSchema() *dataset.Schema {
	return dataset.NewSchema(
		dataset.Field{Name: Species, Kind: dataset.Categorical},
		dataset.Field{Name: Island, Kind: dataset.Categorical},
		dataset.Field{Name: BillLengthMM, Kind: dataset.Numeric},
		dataset.Field{Name: BillDepthMM, Kind: dataset.Numeric},
		dataset.Field{Name: FlipperLengthMM, Kind: dataset.Numeric},
		dataset.Field{Name: BodyMassG, Kind: dataset.Numeric},
		dataset.Field{Name: Sex, Kind: dataset.Categorical},
		dataset.Field{Name: Year, Kind: dataset.Numeric},
	)
}
