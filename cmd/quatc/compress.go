package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ebinlog/quatcodec/block"
	"github.com/ebinlog/quatcodec/container"
	"github.com/ebinlog/quatcodec/internal/csvgyro"
	"github.com/ebinlog/quatcodec/internal/rawquat"
	"github.com/ebinlog/quatcodec/quant"
	"github.com/ebinlog/quatcodec/quat"
)

var (
	compressCSV        string
	compressRaw        string
	compressOut        string
	compressQP         uint8
	compressBlockSize  int
	compressOuterCodec string
)

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Compress a quaternion trajectory into a container file",
	RunE:  runCompress,
}

func init() {
	f := compressCmd.Flags()
	f.StringVar(&compressCSV, "csv", "", "input gcsv gyro capture")
	f.StringVar(&compressRaw, "raw", "", "input .rawquat trajectory")
	f.StringVar(&compressOut, "out", "", "output container file (required)")
	f.Uint8Var(&compressQP, "qp", 14, "quantizer shift, lower is higher fidelity")
	f.IntVar(&compressBlockSize, "block-size", 1024, "quaternions per container block")
	f.StringVar(&compressOuterCodec, "outer-codec", "none", "extra container-level pass: "+joinNames(container.OuterCodecNames()))
	_ = compressCmd.MarkFlagRequired("out")
}

func runCompress(cmd *cobra.Command, args []string) error {
	log := logger()

	quats, err := loadTrajectory(log)
	if err != nil {
		return err
	}
	if len(quats) == 0 {
		return fmt.Errorf("quatc compress: no input quaternions (use --csv or --raw)")
	}

	outer, err := container.OuterCodecByName(compressOuterCodec)
	if err != nil {
		return fmt.Errorf("quatc compress: %w", err)
	}
	w := container.NewWriter(container.Options{OuterCodec: outer})

	state := quant.New()
	scratch := make([]int8, compressBlockSize*12)
	outBuf := make([]byte, compressBlockSize*12+64)

	for start := 0; start < len(quats); start += compressBlockSize {
		end := start + compressBlockSize
		if end > len(quats) {
			end = len(quats)
		}
		chunk := quats[start:end]

		res, err := block.CompressBlock(state, chunk, compressQP, outBuf, scratch)
		if err != nil {
			return fmt.Errorf("quatc compress: block %d: %w", start/compressBlockSize, err)
		}
		w.PutBlockHeader(compressQP, uint16(len(chunk)))
		w.PutBlockData(outBuf[:res.BytesPut])
		state = res.NewState
	}

	f, err := os.Create(compressOut)
	if err != nil {
		return fmt.Errorf("quatc compress: %w", err)
	}
	defer f.Close()
	if err := w.Finish(f); err != nil {
		return fmt.Errorf("quatc compress: %w", err)
	}

	log.Info().Int("quats", len(quats)).Str("out", compressOut).Msg("compressed")
	return nil
}

func loadTrajectory(log zerolog.Logger) ([]quat.Quat, error) {
	switch {
	case compressCSV != "":
		f, err := os.Open(compressCSV)
		if err != nil {
			return nil, fmt.Errorf("quatc compress: %w", err)
		}
		defer f.Close()
		return csvgyro.ParseQuatsLogged(f, log)
	case compressRaw != "":
		f, err := os.Open(compressRaw)
		if err != nil {
			return nil, fmt.Errorf("quatc compress: %w", err)
		}
		defer f.Close()
		return rawquat.Read(f)
	default:
		return nil, fmt.Errorf("quatc compress: one of --csv or --raw is required")
	}
}
