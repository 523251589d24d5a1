package zoo

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"

	"github.com/lifegrid/golife/life"
)

// LoadBinary reads a grid from the binary .bgol format: a little-endian
// uint32 width and height, then one bit per cell, row-major, least
// significant bit first within each byte, final byte zero-padded.
func LoadBinary(path string) (*life.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBinary] failed to read file: %+v", path)
	}
	if len(data) < 8 {
		return nil, errors.Errorf("[LoadBinary] truncated header in %+v", path)
	}
	width := int(int32(binary.LittleEndian.Uint32(data[0:4])))
	height := int(int32(binary.LittleEndian.Uint32(data[4:8])))
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(life.ErrNegativeDimensions, "[LoadBinary] %dx%d in %+v", width, height, path)
	}

	// validate the body against the header before allocating anything, so a
	// truncated file with huge claimed dimensions errors instead of panicking
	var (
		total = int64(width) * int64(height)
		body  = data[8:]
	)
	if int64(len(body)) < (total+7)/8 {
		return nil, errors.Errorf("[LoadBinary] body holds %d of %d cells in %+v", int64(len(body))*8, total, path)
	}

	grid, err := life.NewGrid(width, height)
	if err != nil {
		return nil, errors.WithMessagef(err, "[LoadBinary] bad dimensions in %+v", path)
	}
	for i := 0; i < grid.GetTotalCells(); i++ {
		if body[i/8]>>(i%8)&1 == 1 {
			_ = grid.Set(i%width, i/width, life.Alive)
		}
	}
	return grid, nil
}

// SaveBinary writes a grid to the binary .bgol format.
func SaveBinary(path string, grid *life.Grid) error {
	var (
		width  = grid.GetWidth()
		height = grid.GetHeight()
		total  = width * height
		buf    = make([]byte, 8+(total+7)/8)
	)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(width))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(height))
	for i := 0; i < total; i++ {
		cell, _ := grid.Get(i%width, i/width)
		if cell.IsAlive() {
			buf[8+i/8] |= 1 << (i % 8)
		}
	}

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return errors.Wrapf(err, "[SaveBinary] failed to write file: %+v", path)
	}
	return nil
}
