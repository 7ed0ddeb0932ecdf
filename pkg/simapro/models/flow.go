package models

// FlowKind identifies the flow variant.
type FlowKind int

const (
	// KindProduct is an output product or treated waste.
	KindProduct FlowKind = iota
	// KindTechnosphere is a material, energy or waste exchange with another process.
	KindTechnosphere
	// KindBiosphere is an elementary exchange with the environment.
	KindBiosphere
)

func (k FlowKind) String() string {
	switch k {
	case KindProduct:
		return "product"
	case KindTechnosphere:
		return "technosphere"
	case KindBiosphere:
		return "biosphere"
	}
	return "unknown"
}

// Flow is one exchange of a process. The concrete type is one of
// *ProductFlow, *TechnosphereFlow or *BiosphereFlow.
type Flow interface {
	Base() *FlowBase
	Kind() FlowKind
	flow()
}

// FlowBase holds the attributes shared by all flow variants.
type FlowBase struct {
	// Category is the SimaPro section the flow is filed under
	// (e.g. "Products", "Emissions to air").
	Category string `json:"category"`
	// Name is the product or substance name.
	Name string `json:"name"`
	// Unit is the amount unit.
	Unit string `json:"unit"`
	// Amount is a number or a parameter expression.
	Amount string `json:"amount"`
	// ReviewState is the review state code.
	ReviewState *int `json:"review_state,omitempty"`
	// ReviewerComment is the reviewer's note.
	ReviewerComment string `json:"reviewer_comment,omitempty"`
	// Comment is the free-text comment with annotations removed.
	Comment string `json:"comment,omitempty"`
}

// Exchange holds the attributes of technosphere and biosphere flows.
type Exchange struct {
	// Uncertainty is nil when the distribution is undefined.
	Uncertainty *Uncertainty `json:"uncertainty,omitempty"`
	// ModificationCode is the modification code.
	ModificationCode *int `json:"modification_code,omitempty"`
	// ModificationComment explains the modification.
	ModificationComment string `json:"modification_comment,omitempty"`
	// RelevanceCode is the relevance code.
	RelevanceCode string `json:"relevance_code,omitempty"`
	// RelevanceComment explains the relevance code.
	RelevanceComment string `json:"relevance_comment,omitempty"`
	// ConfidenceCode is the confidence code.
	ConfidenceCode string `json:"confidence_code,omitempty"`
	// ConfidenceComment explains the confidence code.
	ConfidenceComment string `json:"confidence_comment,omitempty"`
}

// ProductFlow is a product output or the treated waste of a waste treatment.
type ProductFlow struct {
	FlowBase
	// WasteType is nil when not defined.
	WasteType *string `json:"waste_type,omitempty"`
	// Allocation is the allocation percentage.
	Allocation *float64 `json:"allocation,omitempty"`
	// ProductCategory is the SimaPro product category path.
	ProductCategory string `json:"product_category"`
}

// TechnosphereFlow is an exchange with another process.
type TechnosphereFlow struct {
	FlowBase
	Exchange
}

// BiosphereFlow is an elementary exchange with the environment.
type BiosphereFlow struct {
	FlowBase
	Exchange
	// Compartment is the environmental compartment (e.g. "Air").
	Compartment string `json:"compartment"`
	// SubCompartment refines the compartment; empty when unspecified.
	SubCompartment string `json:"sub_compartment,omitempty"`
}

func (f *ProductFlow) Base() *FlowBase      { return &f.FlowBase }
func (f *TechnosphereFlow) Base() *FlowBase { return &f.FlowBase }
func (f *BiosphereFlow) Base() *FlowBase    { return &f.FlowBase }

func (f *ProductFlow) Kind() FlowKind      { return KindProduct }
func (f *TechnosphereFlow) Kind() FlowKind { return KindTechnosphere }
func (f *BiosphereFlow) Kind() FlowKind    { return KindBiosphere }

func (*ProductFlow) flow()      {}
func (*TechnosphereFlow) flow() {}
func (*BiosphereFlow) flow()    {}
