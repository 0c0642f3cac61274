package scene

import (
	"fmt"
	"sort"
)

// Builder constructs a scene for the given configuration
type Builder func(config Config) (*Scene, error)

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
	NeedsAssets bool
	build       Builder
}

var builtins = map[string]Info{
	"default": {
		Name:        "default",
		Description: "Random spheres around glass, diffuse and metal spheres under an emissive dome",
		build:       NewDefaultScene,
	},
	"cornell": {
		Name:        "cornell",
		Description: "Cornell box with a ceiling disc light, glass and metal spheres",
		build:       NewCornellScene,
	},
	"inverted-cornell": {
		Name:        "inverted-cornell",
		Description: "Cornell box lit by a disc on the floor",
		build:       NewInvertedCornellScene,
	},
	"earth-moon": {
		Name:        "earth-moon",
		Description: "Bitmap-textured earth and moon lit by a large warm disc",
		NeedsAssets: true,
		build:       NewEarthMoonScene,
	},
	"checkerboard": {
		Name:        "checkerboard",
		Description: "Spheres on an infinite checkered plane under a disc light",
		build:       NewCheckerboardScene,
	},
}

// List returns the built-in scenes sorted by name
func List() []Info {
	infos := make([]Info, 0, len(builtins))
	for _, info := range builtins {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Names returns the sorted names of the built-in scenes
func Names() []string {
	infos := List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// Lookup builds the named built-in scene
func Lookup(name string, config Config) (*Scene, error) {
	info, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return info.build(config)
}
