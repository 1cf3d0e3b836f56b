package models

// GenerationStatus tracks where a shot sits in the external generation
// pipeline. The edit engine treats it as opaque pass-through data.
type GenerationStatus string

const (
	GenerationPending    GenerationStatus = "pending"
	GenerationGenerating GenerationStatus = "generating"
	GenerationCompleted  GenerationStatus = "completed"
	GenerationFailed     GenerationStatus = "failed"
)

// GenerationSettings holds the diffusion parameters a shot was (or will be)
// generated with. The edit engine carries these through unchanged.
type GenerationSettings struct {
	Seed              int64   `json:"seed"`
	DenoisingStrength float64 `json:"denoising_strength"`
	Steps             int     `json:"steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	Sampler           string  `json:"sampler"`
	Scheduler         string  `json:"scheduler"`
}

// Shot is the atomic unit of the timeline. StartTime and Duration are
// integer frame counts; StartTime >= 0 and Duration > 0. Layers are stacked
// in slice order and owned exclusively by their shot.
type Shot struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	StartTime        int                `json:"start_time"`
	Duration         int                `json:"duration"`
	Layers           []Layer            `json:"layers"`
	ReferenceImages  []string           `json:"reference_images,omitempty"`
	Prompt           string             `json:"prompt,omitempty"`
	Generation       GenerationSettings `json:"generation"`
	GenerationStatus GenerationStatus   `json:"generation_status"`
}

// EndTime returns the first frame after the shot, i.e. the exclusive end of
// its half-open interval [StartTime, StartTime+Duration).
func (s Shot) EndTime() int {
	return s.StartTime + s.Duration
}

// Contains reports whether frame falls inside the shot's half-open interval.
func (s Shot) Contains(frame int) bool {
	return frame >= s.StartTime && frame < s.StartTime+s.Duration
}

// Clone returns a deep copy of the shot, including its layer list.
func (s Shot) Clone() Shot {
	out := s
	out.Layers = CloneLayers(s.Layers)
	if s.ReferenceImages != nil {
		out.ReferenceImages = append([]string(nil), s.ReferenceImages...)
	}
	return out
}
