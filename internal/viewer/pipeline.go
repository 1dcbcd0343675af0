package viewer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terravis/internal/config"
	"github.com/Faultbox/terravis/internal/engine/terrain"
	"github.com/Faultbox/terravis/internal/logger"
	"github.com/Faultbox/terravis/pkg/pointcloud"
)

// prepareMesh runs the CPU side of the terrain pipeline: load the
// dataset (or synthesize one when missing and the fallback is enabled),
// normalize, triangulate, compute normals. The result is ready for GPU
// upload.
func prepareMesh(cfg config.TerrainConfig) (*terrain.Mesh, error) {
	cloud, err := pointcloud.Load(cfg.DataPath)
	if errors.Is(err, os.ErrNotExist) && cfg.GenerateFallback {
		logger.Info("dataset missing, generating",
			zap.String("path", cfg.DataPath),
			zap.Int("samples", cfg.SampleCount),
			zap.Int64("seed", cfg.Seed),
		)
		opts := pointcloud.DefaultGenerateOptions()
		opts.Count = cfg.SampleCount
		opts.Seed = cfg.Seed
		points := pointcloud.Generate(opts)
		if werr := pointcloud.WriteFile(cfg.DataPath, points); werr != nil {
			logger.Warn("failed to persist generated dataset", zap.Error(werr))
		}
		cloud = &pointcloud.Cloud{DeclaredCount: len(points), Points: points}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load point cloud: %w", err)
	}

	logger.Info("point cloud loaded",
		zap.String("path", cfg.DataPath),
		zap.Int("declared", cloud.DeclaredCount),
		zap.Int("points", len(cloud.Points)),
	)

	pointcloud.Normalize(cloud.Points)
	logger.Info("points normalized to [-1, 1]",
		zap.Int("points", len(cloud.Points)),
	)

	maxEdge := cfg.MaxEdgeLength
	if maxEdge <= 0 {
		maxEdge = terrain.DefaultMaxEdge
	}

	start := time.Now()
	mesh, err := terrain.BuildMesh(cloud.Points, maxEdge)
	if err != nil {
		return nil, fmt.Errorf("failed to build terrain mesh: %w", err)
	}
	terrain.ComputeNormals(mesh.Vertices, mesh.Indices)

	logger.Info("terrain mesh built",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("took", time.Since(start)),
	)

	return mesh, nil
}
