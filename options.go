package meshsimplify

// Options holds the user-facing decimation knobs, each with a default
// matching DefaultOptions.
type Options struct {
	PreserveBorderEdges      bool
	PreserveUVSeamEdges      bool
	PreserveUVFoldoverEdges  bool
	PreserveSurfaceCurvature bool

	EnableSmartLink    bool
	VertexLinkDistance float64

	MaxIterationCount int
	Aggressiveness    float64

	ManualUVComponentCount bool
	UVComponentCount       int
}

// DefaultOptions returns the package's recommended defaults.
func DefaultOptions() Options {
	return Options{
		EnableSmartLink:    true,
		VertexLinkDistance: defaultVertexLinkDistance,
		MaxIterationCount:  100,
		Aggressiveness:     7.0,
		UVComponentCount:   2,
	}
}

// defaultVertexLinkDistance is small enough to only merge vertices that are
// coincident up to floating-point noise, unless the caller asks for more
// aggressive smart-linking.
const defaultVertexLinkDistance = 1e-6

// ValidateOptions rejects invalid option combinations.
func ValidateOptions(o Options) error {
	if o.MaxIterationCount <= 0 {
		return &InvalidOptionsError{Property: "MaxIterationCount", Message: "must be positive"}
	}
	if o.Aggressiveness <= 0 {
		return &InvalidOptionsError{Property: "Aggressiveness", Message: "must be positive"}
	}
	if o.EnableSmartLink && o.VertexLinkDistance < 0 {
		return &InvalidOptionsError{Property: "VertexLinkDistance", Message: "must be non-negative when EnableSmartLink is set"}
	}
	if o.ManualUVComponentCount && (o.UVComponentCount < 0 || o.UVComponentCount > 4) {
		return &InvalidOptionsError{Property: "UVComponentCount", Message: "must be in [0,4] when ManualUVComponentCount is set"}
	}
	return nil
}
