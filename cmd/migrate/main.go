package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"locker-reservation/internal/handler/middleware"
	"locker-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// Applies migrations/ through the atlas CLI. The directory must carry an
// up-to-date atlas.sum (`atlas migrate hash --dir file://migrations`).
func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	baseline := flag.String("baseline", "", "baseline version for databases created before atlas")
	dryRun := flag.Bool("dry-run", false, "print pending statements without executing them")
	flag.Parse()

	// only the DB and log sections; the API's required settings are irrelevant here
	var cfg struct {
		DB  config.DBConfig
		Log config.LogConfig
	}
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, err := atlasexec.NewClient(".", *atlasBin)
	if err != nil {
		logger.Error("atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:             cfg.DB.BuildDSN(),
		DirURL:          *dir,
		BaselineVersion: *baseline,
		DryRun:          *dryRun,
	})
	if err != nil {
		logger.Error("マイグレーションの適用に失敗しました", "error", err)
		os.Exit(1)
	}

	for _, f := range res.Applied {
		logger.Info("マイグレーション適用", "file", f.Name)
	}
	logger.Info("マイグレーションが完了しました",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", *dryRun)
}
