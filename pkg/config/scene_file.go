package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/anthropics/pathtrace/pkg/camera"
	"github.com/anthropics/pathtrace/pkg/core"
	"github.com/anthropics/pathtrace/pkg/geometry"
	"github.com/anthropics/pathtrace/pkg/loaders"
	"github.com/anthropics/pathtrace/pkg/material"
	"github.com/anthropics/pathtrace/pkg/scene"
	"github.com/anthropics/pathtrace/pkg/texture"
)

// vec3YAML is a 3-tuple [x,y,z] as it appears in a scene file.
type vec3YAML [3]float64

func (v vec3YAML) toVec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

// CameraSpec is the YAML shape of the camera block.
type CameraSpec struct {
	Position      vec3YAML `yaml:"position"`
	LookAt        vec3YAML `yaml:"look_at"`
	FocalLengthMM float64  `yaml:"focal_length_mm"`
	SensorWidthMM float64  `yaml:"sensor_width_mm"`
	SensorHeight  float64  `yaml:"sensor_height_mm"`
	Aperture      float64  `yaml:"aperture"`
	FocusDistance float64  `yaml:"focus_distance"`
}

// RenderSpec is the YAML shape of the render block; it maps directly
// onto RenderConfig.
type RenderSpec struct {
	ImageWidth      int     `yaml:"image_width"`
	ImageHeight     int     `yaml:"image_height"`
	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	Gamma           float64 `yaml:"gamma"`
	Background      string  `yaml:"background"`
	Seed            int64   `yaml:"seed"`
	Workers         int     `yaml:"workers"`
}

// MaterialSpec is one entry of the YAML materials map.
type MaterialSpec struct {
	Type      string   `yaml:"type"` // "matte" | "metal" | "emissive"
	Color     vec3YAML `yaml:"color"`
	Roughness float64  `yaml:"roughness"`
	Emission  vec3YAML `yaml:"emission"`
	Texture   string   `yaml:"texture"` // optional image path
}

// PrimitiveSpec is one entry of the YAML primitives list.
type PrimitiveSpec struct {
	Type     string   `yaml:"type"` // "sphere" | "plane"
	Center   vec3YAML `yaml:"center"`
	Radius   float64  `yaml:"radius"`
	Normal   vec3YAML `yaml:"normal"`
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	Material string   `yaml:"material"`
}

// SceneFile is the top-level YAML document shape: a camera, render
// knobs, a named material palette, and a flat primitive list.
type SceneFile struct {
	Camera     CameraSpec              `yaml:"camera"`
	Render     RenderSpec              `yaml:"render"`
	Materials  map[string]MaterialSpec `yaml:"materials"`
	Primitives []PrimitiveSpec         `yaml:"primitives"`
}

// LoadSceneFile decodes and validates a YAML scene document from path.
func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read scene file: %w", err)
	}

	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("config: failed to parse scene file: %w", err)
	}

	if len(sf.Primitives) == 0 {
		return nil, fmt.Errorf("config: scene file declares no primitives")
	}

	return &sf, nil
}

// buildMaterial constructs a material.Material from a named spec,
// resolving an optional texture image relative to no base path (callers
// are expected to pass paths usable from the process's working directory).
func buildMaterial(spec MaterialSpec) (material.Material, error) {
	var tex texture.Texture
	if spec.Texture != "" {
		img, err := loaders.LoadImage(spec.Texture)
		if err != nil {
			return nil, fmt.Errorf("config: material texture %q: %w", spec.Texture, err)
		}
		tex = img
	}

	switch spec.Type {
	case "matte":
		if tex != nil {
			return material.NewTexturedMatte(spec.Color.toVec3(), tex), nil
		}
		return material.NewMatte(spec.Color.toVec3()), nil
	case "metal":
		if tex != nil {
			return material.NewTexturedMetal(spec.Color.toVec3(), tex, spec.Roughness, nil), nil
		}
		return material.NewMetal(spec.Color.toVec3(), spec.Roughness), nil
	case "emissive":
		if tex != nil {
			return material.NewTexturedEmissive(spec.Emission.toVec3(), tex), nil
		}
		return material.NewEmissive(spec.Emission.toVec3()), nil
	default:
		return nil, fmt.Errorf("config: unknown material type %q", spec.Type)
	}
}

// BuildScene turns a decoded SceneFile into a ready-to-render scene,
// camera, and validated RenderConfig. All construction errors (bad
// radius, bad plane extent, unknown material reference, invalid render
// knobs) are caught here, before any worker starts.
func BuildScene(sf *SceneFile) (*scene.Scene, *camera.Camera, RenderConfig, error) {
	materials := make(map[string]material.Material, len(sf.Materials))
	for name, spec := range sf.Materials {
		mat, err := buildMaterial(spec)
		if err != nil {
			return nil, nil, RenderConfig{}, err
		}
		materials[name] = mat
	}

	primitives := make([]geometry.Primitive, 0, len(sf.Primitives))
	for i, spec := range sf.Primitives {
		mat, ok := materials[spec.Material]
		if !ok {
			return nil, nil, RenderConfig{}, fmt.Errorf("config: primitive %d references unknown material %q", i, spec.Material)
		}

		switch spec.Type {
		case "sphere":
			sphere, err := geometry.NewSphere(spec.Center.toVec3(), spec.Radius, mat)
			if err != nil {
				return nil, nil, RenderConfig{}, fmt.Errorf("config: primitive %d: %w", i, err)
			}
			primitives = append(primitives, sphere)
		case "plane":
			plane, err := geometry.NewPlane(spec.Center.toVec3(), spec.Normal.toVec3(), spec.Width, spec.Height, mat)
			if err != nil {
				return nil, nil, RenderConfig{}, fmt.Errorf("config: primitive %d: %w", i, err)
			}
			primitives = append(primitives, plane)
		default:
			return nil, nil, RenderConfig{}, fmt.Errorf("config: primitive %d has unknown type %q", i, spec.Type)
		}
	}
	s := scene.New(primitives...)

	backgroundName := sf.Render.Background
	if backgroundName == "" {
		backgroundName = "sky"
	}
	background, err := ParseBackgroundMode(backgroundName)
	if err != nil {
		return nil, nil, RenderConfig{}, err
	}

	rc := RenderConfig{
		ImageWidth: sf.Render.ImageWidth, ImageHeight: sf.Render.ImageHeight,
		SamplesPerPixel: sf.Render.SamplesPerPixel,
		MaxDepth:        sf.Render.MaxDepth,
		FocalLengthMM:   sf.Camera.FocalLengthMM,
		SensorWidthMM:   sf.Camera.SensorWidthMM, SensorHeightMM: sf.Camera.SensorHeight,
		Gamma:          sf.Render.Gamma,
		BackgroundMode: background,
		Aperture:       sf.Camera.Aperture,
		FocusDistance:  sf.Camera.FocusDistance,
		Seed:           sf.Render.Seed,
		Workers:        sf.Render.Workers,
	}
	if err := rc.Validate(); err != nil {
		return nil, nil, RenderConfig{}, err
	}

	cam, err := camera.New(camera.Config{
		Position: sf.Camera.Position.toVec3(), LookAt: sf.Camera.LookAt.toVec3(),
		ImageWidth: rc.ImageWidth, ImageHeight: rc.ImageHeight,
		FocalLength: rc.FocalLengthMM, SensorWidth: rc.SensorWidthMM, SensorHeight: rc.SensorHeightMM,
		Aperture: rc.Aperture, FocusDistance: rc.FocusDistance,
	})
	if err != nil {
		return nil, nil, RenderConfig{}, fmt.Errorf("config: camera: %w", err)
	}

	return s, cam, rc, nil
}
