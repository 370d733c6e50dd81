package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/Boboshiok123/SoundCompass/internal/assets"
	"github.com/Boboshiok123/SoundCompass/internal/compass"
	"github.com/Boboshiok123/SoundCompass/internal/config"
	"github.com/Boboshiok123/SoundCompass/internal/ingest"
	"github.com/Boboshiok123/SoundCompass/internal/params"
)

var (
	listenAddr string
	assetsDir  string
)

var rootCmd = &cobra.Command{
	Use:   "soundcompass",
	Short: "Interactive compass overlay driven by a Pure Data patch",
	Long: `SoundCompass renders a draggable compass whose overlays are toggled by ` +
		`"<param> <value>" messages arriving on a TCP socket, typically sent by a ` +
		`Pure Data patch. Drag to rotate the handle, double-click to toggle fullscreen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	// A .env next to the binary may set SOUNDCOMPASS_ADDR and
	// SOUNDCOMPASS_ASSETS; flags still win.
	_ = godotenv.Load()
	cfg := config.FromEnv()
	rootCmd.Flags().StringVar(&listenAddr, "listen", cfg.ListenAddr, "host:port the Pure Data patch connects to")
	rootCmd.Flags().StringVar(&assetsDir, "assets", cfg.AssetsDir, "directory holding the compass artwork")
}

func run() error {
	scene, err := assets.LoadScene(assetsDir)
	if err != nil {
		return fmt.Errorf("load assets from %s: %w", assetsDir, err)
	}

	table := params.NewTable()

	svc := ingest.New(listenAddr, table)
	if err := svc.Listen(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		if err := svc.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("ingest: service stopped", "error", err)
		}
	}()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("PD + Interactive Animations")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(compass.NewGame(scene, table)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("soundcompass: startup failed", "error", err)
		_ = zenity.Error(err.Error(), zenity.Title("SoundCompass"))
		os.Exit(1)
	}
}
