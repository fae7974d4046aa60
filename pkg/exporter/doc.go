// Package exporter saves the top results of a GIPHY search to disk.
//
// ExportTop searches, keeps the first count results (lowest rating first),
// downloads them one after another as 0.gif, 1.gif, ... and finally writes
// the manifest mapping each file to its title, author and rating.
//
// The run is all-or-nothing as far as the manifest is concerned: the first
// failed download stops the loop, files saved before it stay on disk, and
// the previous manifest (if any) is left as it was.
//
// Usage:
//
//	exp := exporter.New(
//	    giphy.NewClient(cfg, nil, nil, log),
//	    downloader.New(cfg.Download.Timeout, log),
//	    storage.NewManager(cfg.Output.BaseDirectory, cfg.Output.Extension),
//	    exporter.WithProgress(ui.NewExportProgress(nil)),
//	)
//	manifest, err := exp.ExportTop(ctx, "cat", 10)
package exporter
