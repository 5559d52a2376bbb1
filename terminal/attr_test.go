package terminal

import "testing"

func TestMergeAttrs(t *testing.T) {
	tests := []struct {
		name     string
		existing Attr
		incoming Attr
		want     Attr
	}{
		{"Neither reversed", AttrNone, AttrNone, AttrNone},
		{"Existing reversed", AttrReverse, AttrNone, AttrReverse},
		{"Incoming reversed", AttrNone, AttrReverse, AttrReverse},
		{"Both reversed cancel", AttrReverse, AttrReverse, AttrNone},
		{"Other bits accumulate", AttrBold, AttrUnderline, AttrBold | AttrUnderline},
		{"Cancel keeps other bits", AttrReverse | AttrBold, AttrReverse | AttrDim, AttrBold | AttrDim},
		{"Duplicate bold", AttrBold, AttrBold, AttrBold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeAttrs(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("MergeAttrs(%b, %b) = %b, want %b",
					tt.existing, tt.incoming, got, tt.want)
			}
		})
	}
}
