package models

// Detection is the outcome of finding an address in an uploaded photo.
type Detection struct {
	Address    string
	Source     string
	Candidates []string
	RawText    string
}

// Upload is an image received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
