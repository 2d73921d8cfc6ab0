package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ebinlog/quatcodec/block"
	"github.com/ebinlog/quatcodec/container"
	"github.com/ebinlog/quatcodec/internal/rawquat"
	"github.com/ebinlog/quatcodec/quant"
	"github.com/ebinlog/quatcodec/quat"
)

var (
	decompressIn         string
	decompressOut        string
	decompressOuterCodec string
)

var decompressCmd = &cobra.Command{
	Use:   "decompress",
	Short: "Decompress a container file into a .rawquat trajectory",
	RunE:  runDecompress,
}

func init() {
	f := decompressCmd.Flags()
	f.StringVar(&decompressIn, "in", "", "input container file (required)")
	f.StringVar(&decompressOut, "out", "", "output .rawquat file (required)")
	f.StringVar(&decompressOuterCodec, "outer-codec", "none", "extra container-level pass used at compress time: "+joinNames(container.OuterCodecNames()))
	_ = decompressCmd.MarkFlagRequired("in")
	_ = decompressCmd.MarkFlagRequired("out")
}

func runDecompress(cmd *cobra.Command, args []string) error {
	log := logger()

	buf, err := os.ReadFile(decompressIn)
	if err != nil {
		return fmt.Errorf("quatc decompress: %w", err)
	}

	outer, err := container.OuterCodecByName(decompressOuterCodec)
	if err != nil {
		return fmt.Errorf("quatc decompress: %w", err)
	}
	r, err := container.Parse(buf, container.Options{OuterCodec: outer})
	if err != nil {
		return fmt.Errorf("quatc decompress: %w", err)
	}

	state := quant.New()
	var all []quat.Quat

	records := r.Records()
	for i := 0; i < len(records); i++ {
		if records[i].Tag != container.TagBlockHeader {
			continue
		}
		hdr := records[i].BlockHdr
		if i+1 >= len(records) {
			return fmt.Errorf("quatc decompress: block header without a following data record")
		}
		data := records[i+1]
		i++

		chunk := make([]quat.Quat, hdr.QuatCount)
		res, err := block.DecompressBlock(state, data.BlockData, chunk)
		if err != nil {
			return fmt.Errorf("quatc decompress: %w", err)
		}
		all = append(all, chunk[:res.QuatsPut]...)
		state = res.NewState
	}

	out, err := os.Create(decompressOut)
	if err != nil {
		return fmt.Errorf("quatc decompress: %w", err)
	}
	defer out.Close()
	if err := rawquat.Write(out, all); err != nil {
		return fmt.Errorf("quatc decompress: %w", err)
	}

	log.Info().Int("quats", len(all)).Str("out", decompressOut).Msg("decompressed")
	return nil
}
