package domain

// CommandKind — вид примитива печати.
type CommandKind int

const (
	CmdText CommandKind = iota
	CmdBold
	CmdInvert
	CmdAlign
	CmdRaw
	CmdFeed
	CmdCut
)

// Alignment — выравнивание строки на принтере.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Command — один примитив печати.
type Command struct {
	Kind  CommandKind
	Text  string
	On    bool
	Align Alignment
	Raw   []byte
	Lines int
}

// Document — упорядоченная последовательность примитивов одного чека.
type Document struct {
	Commands []Command
}

func (d *Document) add(c Command) *Document {
	d.Commands = append(d.Commands, c)
	return d
}

func (d *Document) Text(line string) *Document { return d.add(Command{Kind: CmdText, Text: line}) }

// Lines — несколько текстовых строк подряд.
func (d *Document) Lines(lines ...string) *Document {
	for _, l := range lines {
		d.Text(l)
	}
	return d
}

func (d *Document) Bold(on bool) *Document   { return d.add(Command{Kind: CmdBold, On: on}) }
func (d *Document) Invert(on bool) *Document { return d.add(Command{Kind: CmdInvert, On: on}) }
func (d *Document) Align(a Alignment) *Document {
	return d.add(Command{Kind: CmdAlign, Align: a})
}

// Raw — управляющие байты как есть (например, сброс принтера).
func (d *Document) Raw(b []byte) *Document {
	return d.add(Command{Kind: CmdRaw, Raw: append([]byte(nil), b...)})
}

// Feed — n пустых строк.
func (d *Document) Feed(n int) *Document {
	if n <= 0 {
		return d
	}
	return d.add(Command{Kind: CmdFeed, Lines: n})
}

func (d *Document) Cut() *Document { return d.add(Command{Kind: CmdCut}) }

// TextLines — только текстовые строки документа (для превью и тестов).
func (d *Document) TextLines() []string {
	var out []string
	for _, c := range d.Commands {
		switch c.Kind {
		case CmdText:
			out = append(out, c.Text)
		case CmdFeed:
			for i := 0; i < c.Lines; i++ {
				out = append(out, "")
			}
		}
	}
	return out
}
