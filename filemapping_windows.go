package tgl

import (
	"errors"
	"os"
)

var errMappingUnsupported = errors.New("memory mapping not supported")

// tryMap always fails so that catalogs are read into memory.
func (m *fileMapping) tryMap(f *os.File) error {
	return errMappingUnsupported
}

func (m *fileMapping) closeMapping() error {
	return nil
}
