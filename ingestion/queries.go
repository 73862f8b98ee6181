package ingestion

import "io"

// ReadQueries parses the ZIP codes of interest in file order. Any rate column
// present is ignored; duplicates are kept.
func ReadQueries(r io.Reader, source string) ([]string, error) {
	t, err := newTable(r, source, ColZipcode)
	if err != nil {
		return nil, err
	}

	zips := []string{}
	for {
		rec, err := t.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		zipcode, err := rec.rawField(ColZipcode)
		if err != nil {
			return nil, err
		}
		zips = append(zips, zipcode)
	}

	return zips, nil
}

// LoadQueries reads the ZIP codes of interest at path
func LoadQueries(path string) ([]string, error) {
	return readFile(path, "zips of interest", ReadQueries)
}
