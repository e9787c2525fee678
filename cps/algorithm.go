package cps

import (
	"github.com/medcore/med/internal/encoding"
	"github.com/medcore/med/section"
)

// Algorithm identifies one of the six block codecs spec.md §4.4 names.
type Algorithm uint8

const (
	RED1 Algorithm = iota
	RED2
	PRED1
	PRED2
	MBE
	VDS
)

func (a Algorithm) flag() uint32 {
	switch a {
	case RED1:
		return section.BlockFlagRED1
	case RED2:
		return section.BlockFlagRED2
	case PRED1:
		return section.BlockFlagPRED1
	case PRED2:
		return section.BlockFlagPRED2
	case MBE:
		return section.BlockFlagMBE
	default:
		return section.BlockFlagVDS
	}
}

func algorithmFromFlag(flag uint32) Algorithm {
	switch flag {
	case section.BlockFlagRED1:
		return RED1
	case section.BlockFlagRED2:
		return RED2
	case section.BlockFlagPRED1:
		return PRED1
	case section.BlockFlagPRED2:
		return PRED2
	case section.BlockFlagMBE:
		return MBE
	default:
		return VDS
	}
}

func (a Algorithm) encode(samples []int32, vdsThreshold float64) []byte {
	switch a {
	case RED1:
		return encoding.EncodeRED1(samples)
	case RED2:
		return encoding.EncodeRED2(samples)
	case PRED1:
		return encoding.EncodePRED1(samples)
	case PRED2:
		return encoding.EncodePRED2(samples)
	case MBE:
		return encoding.EncodeMBE(encoding.Differentiate(samples, 1))
	default:
		return encoding.EncodeVDS(samples, vdsThreshold, encoding.VDSSubRED2)
	}
}

func (a Algorithm) decode(data []byte, count int) []int32 {
	switch a {
	case RED1:
		return encoding.DecodeRED1(data, count)
	case RED2:
		return encoding.DecodeRED2(data, count)
	case PRED1:
		return encoding.DecodePRED1(data, count)
	case PRED2:
		return encoding.DecodePRED2(data, count)
	case MBE:
		return encoding.Integrate(encoding.DecodeMBE(data, count), 1)
	default:
		return encoding.DecodeVDS(data, encoding.VDSSubRED2)
	}
}
