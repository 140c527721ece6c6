package chem_extractor

import "context"

// Gateway is the upstream compound database as seen by the resolvers.
// Every method must bound its own latency.  A missing record is reported as
// an error satisfying errors.IsNotFound; any other error is a transient
// failure.  Callers in this package treat both as absent data.
type Gateway interface {
	// CIDByName looks the identifier up as a compound name.
	CIDByName(ctx context.Context, name string) (int, error)
	// CIDByXref looks the identifier up as a registry-number cross reference.
	CIDByXref(ctx context.Context, cas string) (int, error)
	// CIDBySubstanceXref looks the identifier up through substance records.
	CIDBySubstanceXref(ctx context.Context, cas string) (int, error)

	Properties(ctx context.Context, cid int) (Properties, error)
	Synonyms(ctx context.Context, cid int) ([]string, error)
	Description(ctx context.Context, cid int) (Description, error)

	// Document fetches the full annotated record, including the GHS
	// classification section.
	Document(ctx context.Context, cid int) (*Document, error)
}

// Properties is the subset of computed properties used for naming.
type Properties struct {
	Title     string `json:"Title"`
	IUPACName string `json:"IUPACName"`
}

// Description carries the textual description's title.
type Description struct {
	Title string `json:"Title"`
}
