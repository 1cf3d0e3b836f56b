package models

import (
	"encoding/json"
	"fmt"
)

// LayerType discriminates the closed set of layer payloads.
type LayerType string

const (
	LayerTypeMedia       LayerType = "media"
	LayerTypeAudio       LayerType = "audio"
	LayerTypeEffects     LayerType = "effects"
	LayerTypeTransitions LayerType = "transitions"
	LayerTypeText        LayerType = "text"
	LayerTypeKeyframes   LayerType = "keyframes"
)

// LayerData is the type-specific payload of a layer. Exactly one concrete
// payload struct corresponds to each LayerType.
type LayerData interface {
	layerData()
}

// Layer is one piece of content stacked within a shot. StartTime and
// Duration are frame offsets relative to the owning shot.
type Layer struct {
	ID        string    `json:"id"`
	Type      LayerType `json:"type"`
	StartTime int       `json:"start_time"`
	Duration  int       `json:"duration"`
	Locked    bool      `json:"locked"`
	Hidden    bool      `json:"hidden"`
	Opacity   float64   `json:"opacity"`
	BlendMode string    `json:"blend_mode,omitempty"`
	Data      LayerData `json:"data,omitempty"`
}

// Transform2D positions a media layer within the shot frame.
type Transform2D struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
}

// MediaData is the payload of a media layer. TrimIn/TrimOut describe the
// half-open source window [TrimIn, TrimOut) in source frames; SourceDuration
// is the total source length (0 when unknown).
type MediaData struct {
	Src            string      `json:"src"`
	TrimIn         int         `json:"trim_in"`
	TrimOut        int         `json:"trim_out"`
	SourceDuration int         `json:"source_duration,omitempty"`
	Transform      Transform2D `json:"transform"`
}

// AudioData is the payload of an audio layer.
type AudioData struct {
	Src     string  `json:"src"`
	Volume  float64 `json:"volume"`
	FadeIn  int     `json:"fade_in"`
	FadeOut int     `json:"fade_out"`
}

// EffectsData is the payload of an effects layer.
type EffectsData struct {
	Name   string             `json:"name"`
	Params map[string]float64 `json:"params,omitempty"`
}

// TransitionData is the payload of a transitions layer.
type TransitionData struct {
	Kind     string `json:"kind"`
	Duration int    `json:"duration"`
	Easing   string `json:"easing"`
}

// TextPosition is a normalized [0,1] position within the shot frame.
type TextPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextData is the payload of a text layer.
type TextData struct {
	Content    string       `json:"content"`
	FontFamily string       `json:"font_family"`
	FontSize   int          `json:"font_size"`
	Color      string       `json:"color"`
	Position   TextPosition `json:"position"`
}

// Keyframe is a single point on an animated property curve.
type Keyframe struct {
	Frame  int     `json:"frame"`
	Value  float64 `json:"value"`
	Easing string  `json:"easing,omitempty"`
}

// KeyframesData is the payload of a keyframes layer.
type KeyframesData struct {
	Property  string     `json:"property"`
	Keyframes []Keyframe `json:"keyframes"`
}

func (*MediaData) layerData()      {}
func (*AudioData) layerData()      {}
func (*EffectsData) layerData()    {}
func (*TransitionData) layerData() {}
func (*TextData) layerData()       {}
func (*KeyframesData) layerData()  {}

// layerEnvelope mirrors Layer with the payload left raw so UnmarshalJSON can
// pick the concrete type from the discriminator.
type layerEnvelope struct {
	ID        string          `json:"id"`
	Type      LayerType       `json:"type"`
	StartTime int             `json:"start_time"`
	Duration  int             `json:"duration"`
	Locked    bool            `json:"locked"`
	Hidden    bool            `json:"hidden"`
	Opacity   float64         `json:"opacity"`
	BlendMode string          `json:"blend_mode,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// UnmarshalJSON decodes a layer, selecting the payload struct that matches
// the layer's type. An unknown type is an error; a missing payload is not.
func (l *Layer) UnmarshalJSON(b []byte) error {
	var env layerEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	l.ID = env.ID
	l.Type = env.Type
	l.StartTime = env.StartTime
	l.Duration = env.Duration
	l.Locked = env.Locked
	l.Hidden = env.Hidden
	l.Opacity = env.Opacity
	l.BlendMode = env.BlendMode
	l.Data = nil

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	var data LayerData
	switch env.Type {
	case LayerTypeMedia:
		data = &MediaData{}
	case LayerTypeAudio:
		data = &AudioData{}
	case LayerTypeEffects:
		data = &EffectsData{}
	case LayerTypeTransitions:
		data = &TransitionData{}
	case LayerTypeText:
		data = &TextData{}
	case LayerTypeKeyframes:
		data = &KeyframesData{}
	default:
		return fmt.Errorf("unknown layer type %q", env.Type)
	}
	if err := json.Unmarshal(env.Data, data); err != nil {
		return fmt.Errorf("decoding %s layer data: %w", env.Type, err)
	}
	l.Data = data
	return nil
}

// Clone returns a deep copy of the layer, including its payload.
func (l Layer) Clone() Layer {
	out := l
	switch d := l.Data.(type) {
	case *MediaData:
		cp := *d
		out.Data = &cp
	case *AudioData:
		cp := *d
		out.Data = &cp
	case *EffectsData:
		cp := *d
		if d.Params != nil {
			cp.Params = make(map[string]float64, len(d.Params))
			for k, v := range d.Params {
				cp.Params[k] = v
			}
		}
		out.Data = &cp
	case *TransitionData:
		cp := *d
		out.Data = &cp
	case *TextData:
		cp := *d
		out.Data = &cp
	case *KeyframesData:
		cp := *d
		if d.Keyframes != nil {
			cp.Keyframes = append([]Keyframe(nil), d.Keyframes...)
		}
		out.Data = &cp
	}
	return out
}

// CloneLayers deep-copies an ordered layer list.
func CloneLayers(layers []Layer) []Layer {
	if layers == nil {
		return nil
	}
	out := make([]Layer, len(layers))
	for i, l := range layers {
		out[i] = l.Clone()
	}
	return out
}
