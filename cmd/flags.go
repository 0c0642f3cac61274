package cmd

import (
	"github.com/urfave/cli"
)

// RenderFlags returns the flags understood by the render command. Every flag
// can also be set through a PATHTRACER_* environment variable.
func RenderFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "scene, s",
			Value:  "default",
			Usage:  "built-in scene to render (see list-scenes)",
			EnvVar: "PATHTRACER_SCENE",
		},
		cli.IntFlag{
			Name:   "width",
			Value:  640,
			Usage:  "frame width",
			EnvVar: "PATHTRACER_WIDTH",
		},
		cli.IntFlag{
			Name:   "height",
			Value:  480,
			Usage:  "frame height",
			EnvVar: "PATHTRACER_HEIGHT",
		},
		cli.IntFlag{
			Name:   "spp",
			Value:  25,
			Usage:  "samples per 2x2 sub-pixel stratum (each pixel traces 4x this many paths)",
			EnvVar: "PATHTRACER_SPP",
		},
		cli.IntFlag{
			Name:   "max-depth",
			Value:  50,
			Usage:  "maximum bounce depth, enforced only with --cap-depth",
			EnvVar: "PATHTRACER_MAX_DEPTH",
		},
		cli.BoolFlag{
			Name:   "cap-depth",
			Usage:  "stop paths at --max-depth instead of the built-in hard limit",
			EnvVar: "PATHTRACER_CAP_DEPTH",
		},
		cli.Float64Flag{
			Name:   "gamma",
			Value:  2.2,
			Usage:  "output gamma",
			EnvVar: "PATHTRACER_GAMMA",
		},
		cli.IntFlag{
			Name:   "workers, w",
			Value:  0,
			Usage:  "number of render goroutines (0 uses every logical CPU)",
			EnvVar: "PATHTRACER_WORKERS",
		},
		cli.Int64Flag{
			Name:   "seed",
			Value:  1,
			Usage:  "seed for scene generation and sampling",
			EnvVar: "PATHTRACER_SEED",
		},
		cli.StringFlag{
			Name:   "background",
			Value:  "black",
			Usage:  "radiance for rays that escape the scene: black or sky",
			EnvVar: "PATHTRACER_BACKGROUND",
		},
		cli.StringFlag{
			Name:   "textures",
			Value:  "textures",
			Usage:  "directory holding texture images for textured scenes",
			EnvVar: "PATHTRACER_TEXTURES",
		},
		cli.IntFlag{
			Name:   "jpeg-quality",
			Value:  90,
			Usage:  "quality for .jpg output (1-100)",
			EnvVar: "PATHTRACER_JPEG_QUALITY",
		},
		cli.StringFlag{
			Name:   "out, o",
			Value:  "output.png",
			Usage:  "image filename for the rendered frame; the extension selects the format",
			EnvVar: "PATHTRACER_OUT",
		},
	}
}
