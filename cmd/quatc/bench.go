package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ebinlog/quatcodec/block"
	"github.com/ebinlog/quatcodec/internal/rawquat"
	"github.com/ebinlog/quatcodec/quant"
)

var (
	benchRaw       string
	benchQP        uint8
	benchBlockSize int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Report compression ratio and angular error for a .rawquat trajectory",
	RunE:  runBench,
}

func init() {
	f := benchCmd.Flags()
	f.StringVar(&benchRaw, "raw", "", "input .rawquat trajectory (required)")
	f.Uint8Var(&benchQP, "qp", 14, "quantizer shift, lower is higher fidelity")
	f.IntVar(&benchBlockSize, "block-size", 1024, "quaternions per block")
	_ = benchCmd.MarkFlagRequired("raw")
}

func runBench(cmd *cobra.Command, args []string) error {
	f, err := os.Open(benchRaw)
	if err != nil {
		return fmt.Errorf("quatc bench: %w", err)
	}
	defer f.Close()

	quats, err := rawquat.Read(f)
	if err != nil {
		return fmt.Errorf("quatc bench: %w", err)
	}
	if len(quats) == 0 {
		return fmt.Errorf("quatc bench: empty trajectory")
	}

	state := quant.New()

	totalBytes := 0
	maxErrDeg := 0.0

	for start := 0; start < len(quats); start += benchBlockSize {
		end := start + benchBlockSize
		if end > len(quats) {
			end = len(quats)
		}
		chunk := quats[start:end]

		res, err := block.SelfCheck(state, chunk, benchQP)
		if err != nil {
			return fmt.Errorf("quatc bench: block %d: %w", start/benchBlockSize, err)
		}
		totalBytes += res.BytesPut
		if res.MeasuredAngErrDeg > maxErrDeg {
			maxErrDeg = res.MeasuredAngErrDeg
		}
		state = res.NewState
	}

	inputBytes := len(quats) * 16
	ratio := float64(inputBytes) / float64(totalBytes)

	p := message.NewPrinter(language.English)
	p.Printf("quaternions:        %d\n", len(quats))
	p.Printf("raw size:           %d bytes\n", inputBytes)
	p.Printf("compressed size:    %d bytes\n", totalBytes)
	p.Printf("compression ratio:  %.2fx\n", ratio)
	p.Printf("max angular error:  %.5f deg\n", maxErrDeg)
	return nil
}
