package renderer

// Chunk is a contiguous range of image columns rendered as one unit of work
type Chunk struct {
	ID     int
	X0, X1 int // columns [X0, X1)
}

// Columns returns the number of columns in the chunk
func (c Chunk) Columns() int {
	return c.X1 - c.X0
}

// PartitionColumns splits [0, width) into ceil(width/chunkSize) disjoint chunks
func PartitionColumns(width, chunkSize int) []Chunk {
	if width <= 0 || chunkSize <= 0 {
		return nil
	}

	numChunks := (width + chunkSize - 1) / chunkSize // Ceiling division
	chunks := make([]Chunk, 0, numChunks)
	for i := 0; i < numChunks; i++ {
		x0 := i * chunkSize
		chunks = append(chunks, Chunk{
			ID: i,
			X0: x0,
			X1: min(x0+chunkSize, width), // Don't exceed image bounds
		})
	}
	return chunks
}
