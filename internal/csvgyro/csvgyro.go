// Package csvgyro ingests a CSV capture of raw rate-gyro samples (the
// "gcsv" format emitted by common gyro-flow-style capture tools) and
// integrates it into a quaternion stream via quat.FromRVec, the same way
// the firmware does it on-device.
package csvgyro

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/ebinlog/quatcodec/fix"
	"github.com/ebinlog/quatcodec/quat"
)

// Scale factors for the capture device this collaborator targets: raw
// per-sample int32 gyro ticks -> radians per sample.
const (
	TimeScale = 0.00180
	GyroScale = 0.00053263221
)

// ParseRVecs reads gcsv-style rows (skipping any header lines until the
// first line that starts with a digit) and returns one rotation vector per
// row, built from CSV columns 1-3 (column 0 is a sample index/timestamp
// this parser ignores).
func ParseRVecs(r io.Reader) ([]quat.RVec, error) {
	scanner := bufio.NewScanner(r)
	var out []quat.RVec
	seenData := false

	for scanner.Scan() {
		line := scanner.Text()
		if !seenData {
			if !startsWithDigit(line) {
				continue
			}
			seenData = true
		}

		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			return nil, fmt.Errorf("csvgyro: row %q has fewer than 4 columns", line)
		}

		var vals [3]float32
		for i := 0; i < 3; i++ {
			n, err := strconv.ParseInt(strings.TrimSpace(fields[i+1]), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("csvgyro: column %d: %w", i+1, err)
			}
			vals[i] = float32(n) * GyroScale * TimeScale
		}
		out = append(out, quat.NewRVec(
			fix.FromFloat32(vals[0]),
			fix.FromFloat32(vals[1]),
			fix.FromFloat32(vals[2]),
		))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("csvgyro: %w", err)
	}
	return out, nil
}

// Integrate converts a sequence of per-sample rotation vectors into an
// orientation trajectory by repeated Hamilton products, starting from
// identity: Quat[i] = Quat[i-1] * from_rvec(rvecs[i]).
func Integrate(rvecs []quat.RVec) []quat.Quat {
	out := make([]quat.Quat, len(rvecs))
	cur := quat.Identity()
	for i, v := range rvecs {
		cur = cur.Mul(quat.FromRVec(v))
		out[i] = cur
	}
	return out
}

// ParseQuats is the ParseRVecs + Integrate pipeline in one call.
func ParseQuats(r io.Reader) ([]quat.Quat, error) {
	rvecs, err := ParseRVecs(r)
	if err != nil {
		return nil, err
	}
	return Integrate(rvecs), nil
}

// ParseQuatsLogged is ParseQuats with a row-count diagnostic on log, for
// callers (cmd/quatc) that want visibility into how many samples a capture
// contributed before it reaches the compressor.
func ParseQuatsLogged(r io.Reader, log zerolog.Logger) ([]quat.Quat, error) {
	rvecs, err := ParseRVecs(r)
	if err != nil {
		log.Error().Err(err).Msg("csvgyro: parse failed")
		return nil, err
	}
	log.Info().Int("samples", len(rvecs)).Msg("csvgyro: parsed gyro samples")
	return Integrate(rvecs), nil
}

func startsWithDigit(line string) bool {
	if line == "" {
		return false
	}
	return unicode.IsDigit(rune(line[0]))
}
