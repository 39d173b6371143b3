package http

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendRequestLine appends "METHOD TARGET VERSION\r\n" to buf.
// The version and its separator are omitted when version is empty.
func appendRequestLine(buf []byte, method, target, version string) []byte {
	buf = append(buf, method...)
	buf = append(buf, ' ')
	buf = append(buf, target...)
	if version != "" {
		buf = append(buf, ' ')
		buf = append(buf, version...)
	}
	return appendCRLF(buf)
}
