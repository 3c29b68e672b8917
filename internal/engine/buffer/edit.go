package buffer

// Cursor-aware editing helpers. Horizontal movement and edits store the
// resulting column as the desired column; vertical movement reads it so the
// cursor keeps its column across shorter lines.

// WriteChar inserts ch at the insertion index and moves past it.
func (b *Buffer) WriteChar(ch byte) {
	b.Write(ch)
	b.NextChar()
}

// DeleteNextChar deletes the byte after the cursor. The cursor stays.
func (b *Buffer) DeleteNextChar() {
	b.Delete(1)
	b.storeDesiredColumn()
}

// DeletePrevChar deletes the byte before the cursor and moves back over it.
// At the start of the text it does nothing.
func (b *Buffer) DeletePrevChar() {
	if b.InsertionIndex() == 0 {
		return
	}
	b.PrevChar()
	b.Delete(1)
}

// DeleteRange moves the cursor to the start of r (after clamping) and
// deletes the bytes it covers.
func (b *Buffer) DeleteRange(r Range) {
	r = r.Clamp(len(b.text))
	b.insertion = r.Start
	b.Delete(r.Len())
	b.storeDesiredColumn()
}

// NextChar moves the cursor one byte forward.
func (b *Buffer) NextChar() {
	b.SetInsertionIndex(b.InsertionIndex() + 1)
	b.storeDesiredColumn()
}

// PrevChar moves the cursor one byte back, stopping at 0.
func (b *Buffer) PrevChar() {
	b.SetInsertionIndex(b.InsertionIndex() - 1)
	b.storeDesiredColumn()
}

// NextLine moves the cursor to the following line at the desired column.
// From the last line it moves to the end of the text.
func (b *Buffer) NextLine() {
	p := b.CursorPoint()
	b.SetCursorPoint(p.Line+1, b.desiredCol)
}

// PrevLine moves the cursor to the preceding line at the desired column.
// From the first line it moves to the desired column of that line.
func (b *Buffer) PrevLine() {
	p := b.CursorPoint()
	b.SetCursorPoint(max(p.Line-1, 0), b.desiredCol)
}

// NextWord moves the cursor over the next word.
//
// The cursor first skips whitespace to the start of the next run of
// non-whitespace, then advances to the whitespace that ends the run. When the
// run extends to the end of the text and skipping whitespace already moved
// the cursor, it stops at the start of the run instead, so the last word of
// the text is visited before the end of the text.
func (b *Buffer) NextWord() {
	start := b.InsertionIndex()
	i := start
	for i < len(b.text) && isSpace(b.text[i]) {
		i++
	}
	runStart := i
	for i < len(b.text) && !isSpace(b.text[i]) {
		i++
	}
	if i == len(b.text) && runStart > start {
		i = runStart
	}
	b.insertion = i
	b.storeDesiredColumn()
}

// PrevWord moves the cursor to the start of the previous word.
func (b *Buffer) PrevWord() {
	i := b.InsertionIndex()
	for i > 0 && isSpace(b.text[i-1]) {
		i--
	}
	for i > 0 && !isSpace(b.text[i-1]) {
		i--
	}
	b.insertion = i
	b.storeDesiredColumn()
}

func (b *Buffer) storeDesiredColumn() {
	b.desiredCol = b.CursorPoint().Column
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
