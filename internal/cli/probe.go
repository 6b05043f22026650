package cli

import (
	"fmt"
	"os"

	"github.com/reelforge/reelforge/internal/media"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe [video_file]",
	Short: "Print media information for a video file",
	Args:  cobra.ExactArgs(1),
	RunE:  runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", videoPath)
	}

	info, err := media.Probe(videoPath)
	if err != nil {
		return fmt.Errorf("failed to probe video: %w", err)
	}

	fmt.Printf("Path:       %s\n", info.Path)
	fmt.Printf("Duration:   %.3fs\n", info.Duration)
	fmt.Printf("Resolution: %dx%d\n", info.Width, info.Height)
	fmt.Printf("Frame rate: %.3f fps\n", info.FrameRate)
	fmt.Printf("Codec:      %s\n", info.Codec)
	fmt.Printf("Audio:      %t\n", info.HasAudio)
	return nil
}
