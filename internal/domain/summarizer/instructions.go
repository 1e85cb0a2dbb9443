package summarizer

// Instructions holds the three fragments derived from a Selection.
type Instructions struct {
	Length string
	Tone   string
	Format string
}

// BuildInstructions maps a selection onto its fixed instruction fragments.
func BuildInstructions(sel Selection) Instructions {
	return Instructions{
		Length: sel.Length.Instruction(),
		Tone:   sel.Tone.Instruction(),
		Format: sel.Format.Instruction(),
	}
}

// Instruction returns the target length and structure fragment.
// Unknown lengths get the detailed fragment.
func (l Length) Instruction() string {
	switch l {
	case LengthShort:
		return "Give a very short summary in 3 bullet points. Max ~40 words total."
	case LengthMedium:
		return "Give 5 concise bullet points followed by a short paragraph (~100 words)."
	default:
		return "Give a detailed summary: key bullet points, a short paragraph (~150 words), and a 1-line takeaway."
	}
}

// Instruction returns the voice fragment.
func (t Tone) Instruction() string {
	switch t {
	case ToneNeutral:
		return "Use a neutral, informative tone."
	case ToneSimple:
		return "Use plain language, easy to understand."
	case ToneProfessional:
		return "Use clear, professional language suitable for a report."
	case ToneCasual:
		return "Use a friendly, conversational tone."
	case ToneKidFriendly:
		return "Explain in very simple words, like to a 10-year-old."
	default:
		return "Use a neutral tone."
	}
}

// Instruction returns the layout fragment.
func (f Format) Instruction() string {
	switch f {
	case FormatBullets:
		return "Output bullet points only."
	case FormatParagraph:
		return "Output one short paragraph only."
	case FormatBulletsParagraph:
		return "Start with bullet points, then a short paragraph."
	case FormatTLDR:
		return "Output a single TL;DR line."
	default:
		return "Output bullet points only."
	}
}
