package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
	"github.com/df07/go-cubemap-raytracer/pkg/integrator"
	"github.com/df07/go-cubemap-raytracer/pkg/loaders"
	"github.com/df07/go-cubemap-raytracer/pkg/renderer"
)

const resultPath = "result.png"

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Cube Map Raytracer")
		fmt.Fprintf(os.Stderr, "Usage: %s <scene-path> <camera-config-path>\n", os.Args[0])
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "The final image is written to %s; snapshots of the\n", resultPath)
		fmt.Fprintf(os.Stderr, "render in progress are written to %s.\n", renderer.DefaultTiledConfig().IntermediatePath)
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	logger := renderer.NewDefaultLogger()
	if err := run(context.Background(), flag.Arg(0), flag.Arg(1), resultPath, renderer.DefaultTiledConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the scene and camera, renders, and saves the final image to outputPath
func run(ctx context.Context, scenePath, cameraPath, outputPath string, config renderer.TiledConfig, logger core.Logger) error {
	logger.Printf("Starting Cube Map Raytracer...\n")

	startTime := time.Now()
	loadedScene, err := loaders.LoadScene(scenePath)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}
	cameraConfig, err := loaders.LoadCameraConfig(cameraPath)
	if err != nil {
		return fmt.Errorf("failed to load camera: %w", err)
	}
	logger.Printf("Loaded %s: %d triangles, %d vertices, %d materials, %d lights (environment: %t) in %v\n",
		scenePath, loadedScene.Mesh.FaceCount(), loadedScene.Mesh.VertexCount(),
		loadedScene.Materials.Len(), len(loadedScene.Lights), loadedScene.HasEnvironment(), time.Since(startTime))

	raytracer := renderer.NewTiledRaytracer(loadedScene, renderer.NewCamera(cameraConfig),
		integrator.NewMirrorIntegrator(), config, logger)

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	if err := renderer.SavePNG(outputPath, img); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	logger.Printf("Render completed: %dx%d, sky pass %v, trace pass %v, %d snapshots\n",
		stats.Width, stats.Height, stats.SkyPass, stats.TracePass, stats.Snapshots)
	logger.Printf("Render saved as %s\n", outputPath)
	return nil
}
