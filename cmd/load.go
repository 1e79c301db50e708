package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"asset-loader/core/asset"
	"asset-loader/core/asset/loaders"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	loadType string
	loadAny  bool
	loadKeys []string
	loadJSON bool
)

// loadCmd loads one or more assets and prints a summary of each.
var loadCmd = &cobra.Command{
	Use:   "load <request...>",
	Short: "Load assets by URL",
	Long: `Loads every argument as one batch. Without --any the batch stops at the
first failure; with --any failed items are reported and the rest still load.
--keys turns the batch into a keyed group, one key per argument.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ld, _, err := newAssetLoader(cfg, logg)
		if err != nil {
			return err
		}

		b, err := buildBatch(args, loadType, loadKeys)
		if err != nil {
			return err
		}
		return runLoad(cmd.Context(), ld, b, loadAny, loadJSON, cmd.OutOrStdout(), logg)
	},
}

func init() {
	loadCmd.Flags().StringVarP(&loadType, "type", "t", "", "loader key applied to every request (e.g. json, image)")
	loadCmd.Flags().BoolVar(&loadAny, "any", false, "keep loading when an item fails")
	loadCmd.Flags().StringSliceVar(&loadKeys, "keys", nil, "keys naming each request, making the batch a keyed group")
	loadCmd.Flags().BoolVar(&loadJSON, "json", false, "print results as JSON")
	RootCmd.AddCommand(loadCmd)
}

// buildBatch turns CLI arguments into a list or, with keys, a keyed group.
func buildBatch(args []string, typ string, keys []string) (*asset.Batch, error) {
	reqs := make([]asset.Request, len(args))
	for i, arg := range args {
		if typ != "" {
			reqs[i] = asset.Spec{URL: arg, Type: asset.Type(typ)}
		} else {
			reqs[i] = arg
		}
	}
	if len(keys) == 0 {
		return asset.List(reqs...), nil
	}

	if len(keys) != len(args) {
		return nil, fmt.Errorf("got %d keys for %d requests", len(keys), len(args))
	}
	group := make(map[string]asset.Request, len(keys))
	for i, k := range keys {
		if _, dup := group[k]; dup {
			return nil, fmt.Errorf("duplicate key %q", k)
		}
		group[k] = reqs[i]
	}
	return asset.Keyed(group), nil
}

func runLoad(ctx context.Context, ld *asset.Loader, b *asset.Batch, anyMode, asJSON bool, out io.Writer, logg *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	progress := asset.WithProgress(func(ev asset.ProgressEvent) {
		fields := []zap.Field{
			zap.Int("count", ev.Count),
			zap.Int("total", ev.Total),
			zap.Float64("progress", ev.Progress),
		}
		if ev.Key != "" {
			fields = append(fields, zap.String("key", ev.Key))
		} else {
			fields = append(fields, zap.Int("index", ev.Index))
		}
		if ev.Err != nil {
			logg.Warn("Asset failed", append(fields, zap.Error(ev.Err))...)
			return
		}
		logg.Info("Asset loaded", fields...)
	})

	var (
		res *asset.Results
		err error
	)
	if anyMode {
		res, err = ld.Any(ctx, b, progress)
	} else {
		res, err = ld.All(ctx, b, progress)
	}
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	keys := res.Keys()
	for i := 0; i < res.Len(); i++ {
		label := fmt.Sprintf("[%d]", i)
		if res.Keyed() {
			label = keys[i]
		}
		if e := res.Err(i); e != nil {
			fmt.Fprintf(out, "%-12s FAILED  %v\n", label, e)
			continue
		}
		fmt.Fprintf(out, "%-12s %s\n", label, describe(res.At(i)))
	}
	if failed := res.Failed(); failed > 0 {
		fmt.Fprintf(out, "%d of %d assets failed\n", failed, res.Len())
	}
	return nil
}

// describe summarizes a loaded asset in one line.
func describe(v asset.Asset) string {
	switch a := v.(type) {
	case string:
		return fmt.Sprintf("text    %d chars  %q", len(a), preview(a))
	case []byte:
		return fmt.Sprintf("binary  %d bytes", len(a))
	case *loaders.Blob:
		return fmt.Sprintf("blob    %d bytes  %s", a.Size, a.Type)
	case *loaders.Image:
		return fmt.Sprintf("image   %s %dx%d  %d bytes", a.Format, a.Width, a.Height, len(a.Data))
	case *loaders.Media:
		return fmt.Sprintf("%-7s %s  %d bytes  ready=%s", a.Kind, a.MIMEType, a.Size, a.Ready)
	case nil:
		return "null"
	default:
		raw, err := json.Marshal(a)
		if err != nil {
			return fmt.Sprintf("%T", a)
		}
		return fmt.Sprintf("json    %s", preview(string(raw)))
	}
}

// preview collapses whitespace and shortens s to 48 runes.
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) > 48 {
		return string([]rune(s)[:45]) + "..."
	}
	return s
}
