package cpu

// TableFor returns the instruction table a variant dispatches through.
// It is exported for tools (disassemblers, monitors) that need the
// table without constructing a full Processor.
func TableFor(v Variant) *Table {
	t, _, err := tableFor(v)
	if err != nil {
		panic(err)
	}
	return t
}
