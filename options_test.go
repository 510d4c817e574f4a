package meshsimplify

import "testing"

func TestDefaultOptionsValidate(t *testing.T) {
	if err := ValidateOptions(DefaultOptions()); err != nil {
		t.Fatalf("DefaultOptions() should validate cleanly, got %v", err)
	}
}

func TestValidateOptionsRejectsBadCombinations(t *testing.T) {
	base := DefaultOptions()

	cases := []struct {
		name   string
		modify func(*Options)
	}{
		{"zero iterations", func(o *Options) { o.MaxIterationCount = 0 }},
		{"negative iterations", func(o *Options) { o.MaxIterationCount = -1 }},
		{"zero aggressiveness", func(o *Options) { o.Aggressiveness = 0 }},
		{"negative vertex link distance", func(o *Options) {
			o.EnableSmartLink = true
			o.VertexLinkDistance = -1
		}},
		{"UV component count out of range", func(o *Options) {
			o.ManualUVComponentCount = true
			o.UVComponentCount = 5
		}},
	}

	for _, c := range cases {
		o := base
		c.modify(&o)
		if err := ValidateOptions(o); err == nil {
			t.Errorf("%s: expected an error, got nil", c.name)
		}
	}
}
