package ledgerfile

// SplitIntoChunks splits data into fixed-size chunks no larger than
// chunkSize, the ledger's hard per-write payload cap. The last chunk may be
// smaller. Concatenating the chunks in order reproduces data exactly, with
// chunk count ceil(len(data)/chunkSize).
// Returns an error if chunkSize is not positive.
func SplitIntoChunks(data []byte, chunkSize int) ([][]byte, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if len(data) == 0 {
		return nil, nil
	}
	var chunks [][]byte
	for i := 0; i < len(data); i += chunkSize {
		end := i + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := make([]byte, end-i)
		copy(chunk, data[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}
