package source

import (
	"fmt"
	"strings"

	"github.com/user/y4mgif/pkg/ports"
)

// sampling is the chroma subsampling family of a stream.
type sampling int

const (
	// sampMono has a single luma plane and no chroma.
	sampMono sampling = iota
	// samp1x1 has chroma at full resolution (4:4:4).
	samp1x1
	// samp2x1 has chroma at half horizontal resolution (4:2:2).
	samp2x1
	// samp2x2 has chroma at half resolution on both axes (4:2:0).
	samp2x2
)

// resolveSampling maps a declared colorspace tag to its subsampling
// family. Deeper-than-8-bit variants are rejected by name rather than
// silently truncated, and unrecognized tags are rejected with the raw
// header text to aid diagnosis.
func resolveSampling(cs ports.Colorspace, rawParams string) (sampling, error) {
	switch cs {
	case ports.CsMono:
		return sampMono, nil
	case ports.CsMono12:
		return 0, fmt.Errorf("y4m with mono12 is not supported yet")
	case ports.Cs420, ports.Cs420JPEG, ports.Cs420PALDV, ports.Cs420MPEG2:
		return samp2x2, nil
	case ports.Cs420P10:
		return 0, fmt.Errorf("y4m with 420p10 is not supported yet")
	case ports.Cs420P12:
		return 0, fmt.Errorf("y4m with 420p12 is not supported yet")
	case ports.Cs422:
		return samp2x1, nil
	case ports.Cs422P10:
		return 0, fmt.Errorf("y4m with 422p10 is not supported yet")
	case ports.Cs422P12:
		return 0, fmt.Errorf("y4m with 422p12 is not supported yet")
	case ports.Cs444:
		return samp1x1, nil
	case ports.Cs444P10:
		return 0, fmt.Errorf("y4m with 444p10 is not supported yet")
	case ports.Cs444P12:
		return 0, fmt.Errorf("y4m with 444p12 is not supported yet")
	default:
		return 0, fmt.Errorf("y4m uses unsupported color mode %s", rawParams)
	}
}

// ResolveMatrix picks the conversion matrix: an explicit override wins,
// otherwise standard definition resolutions get BT.601 and everything
// else BT.709. This is a heuristic default, not a guarantee about the
// stream's actual mastering.
func ResolveMatrix(override *ports.Matrix, width, height int) ports.Matrix {
	if override != nil {
		return *override
	}
	if height <= 480 && width <= 720 {
		return ports.MatrixBT601
	}
	return ports.MatrixBT709
}

// ResolveRange scans the raw header bytes for a COLORRANGE= parameter.
// A value starting with FULL selects full range; anything else,
// including an absent token, selects limited range.
func ResolveRange(rawParams []byte) ports.Range {
	_, after, found := strings.Cut(string(rawParams), "COLORRANGE=")
	if found && strings.HasPrefix(after, "FULL") {
		return ports.RangeFull
	}
	return ports.RangeLimited
}

// estimatorWeight is the bytes-per-frame weight of a colorspace tag in
// quarter-samples per pixel: 4 for monochrome, 6 for 4:2:0, 8 for
// 4:2:2, 12 for 4:4:4. Unrecognized tags get the conservative 4:4:4
// weight, which may overestimate the frame count for exotic formats.
func estimatorWeight(cs ports.Colorspace) int {
	switch cs {
	case ports.CsMono, ports.CsMono12:
		return 4
	case ports.Cs420, ports.Cs420P10, ports.Cs420P12,
		ports.Cs420JPEG, ports.Cs420PALDV, ports.Cs420MPEG2:
		return 6
	case ports.Cs422, ports.Cs422P10, ports.Cs422P12:
		return 8
	case ports.Cs444, ports.Cs444P10, ports.Cs444P12:
		return 12
	default:
		return 12
	}
}
