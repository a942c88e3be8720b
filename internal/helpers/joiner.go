package helpers

// This provides an efficient way to join lots of small strings together. The
// minifier adds each lexeme as a slice of the original source, so nothing is
// copied until "Done" measures the total length and allocates once.
type Joiner struct {
	strings  []joinerString
	length   uint32
	lastByte byte
}

type joinerString struct {
	data   string
	offset uint32
}

func (j *Joiner) AddString(data string) {
	if len(data) == 0 {
		return
	}
	j.lastByte = data[len(data)-1]
	j.strings = append(j.strings, joinerString{data, j.length})
	j.length += uint32(len(data))
}

// This is zero if nothing has been added yet
func (j *Joiner) LastByte() byte {
	return j.lastByte
}

func (j *Joiner) Length() uint32 {
	return j.length
}

func (j *Joiner) Done() []byte {
	buffer := make([]byte, j.length)
	for _, item := range j.strings {
		copy(buffer[item.offset:], item.data)
	}
	return buffer
}
