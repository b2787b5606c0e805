package prompt

import "fmt"

// Role tags a payload segment for the generation backend.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Segment is one role-tagged block of text in a request payload.
type Segment struct {
	Role Role
	Text string
}

// Payload is the ordered sequence of segments sent to the generator:
// one system instruction followed by one labeled block per transcription.
type Payload struct {
	Segments []Segment
}

// The directives are in Swedish, matching the language of the archive
// operators and of the scanned material this workflow processes.
const ensembleInstruction = "Du har en mycket viktig uppgift!\n\n" +
	"#### DIN UPPGIFT ####\n" +
	"Din uppgift är att ordagrant återskapa texten från ett inscannat dokument. " +
	"För att göra detta kommer du få tillgång till en eller flera OCR-transkriptioner av dokumentet.\n\n" +
	"#### DETALJER #### \n\n" +
	"Analysera de tillgängliga OCR-transkriptionerna och konstruera baserat på dem den " +
	"mest exakta ordagranna transkriptionen av originaldokumentet. " +
	"Ta hänsyn till skillnader mellan transkriptionerna, såväl som löptextens innebörd och sammanhang.\n\n"

const polishInstruction = "Du har en mycket viktig uppgift!\n\n" +
	"#### DIN UPPGIFT ####\n" +
	"En mjukvara har producerat följande OCR av en pdf.\n" +
	"Ditt jobb är följande: Med hjälp av den presenterade OCRen ska du återskapa texten i dokumentet, så ordagrannt som möjligt.\n\n" +
	"#### DETALJER #### \n\n" +
	"Du är strikt förbjuden att ändra på innehållet i dokumentet och det är av yttersta vikt att det du returnerar ska vara så nära originalet du kan förmå. " +
	"Om det finns tecken eller symboler du ej kan avläsa, ersätt dem med en asterix: '*'\n\n"

// BuildEnsemble composes the reconciliation payload for one document: the
// ensemble directive followed by one user segment per candidate transcription,
// labeled 1-based in input order. A single candidate is valid; the generator
// then normalizes rather than merges. Pure function, no I/O.
func BuildEnsemble(candidates []string) Payload {
	segments := make([]Segment, 0, len(candidates)+1)
	segments = append(segments, Segment{Role: RoleSystem, Text: ensembleInstruction})

	for i, candidate := range candidates {
		segments = append(segments, Segment{
			Role: RoleUser,
			Text: fmt.Sprintf("#### OCR-transkription %d: #### \n%s\n\n", i+1, candidate),
		})
	}

	return Payload{Segments: segments}
}

// BuildPolish composes the single-transcription payload: the polish directive
// plus exactly one user segment. The segment embeds the transcription twice;
// the upstream workflow has always sent it that way and downstream prompt
// tuning depends on the exact bytes, so the duplication is kept as-is.
func BuildPolish(candidate string) Payload {
	return Payload{Segments: []Segment{
		{Role: RoleSystem, Text: polishInstruction},
		{Role: RoleUser, Text: fmt.Sprintf("#### OCR-transkription: #### \n%s\n\n%s", candidate, candidate)},
	}}
}
