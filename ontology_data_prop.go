package ontograph

// PropertyModel is the T-Box container for properties plus their
// taxonomies: SubPropertyOf, EquivalentProperty and InverseOf.
type PropertyModel struct {
	properties map[Fingerprint]*Property

	SubPropertyOf      *Taxonomy
	EquivalentProperty *Taxonomy
	InverseOf          *Taxonomy
}

// NewPropertyModel creates an empty property model.
func NewPropertyModel() *PropertyModel {
	return &PropertyModel{
		properties:         map[Fingerprint]*Property{},
		SubPropertyOf:      NewTaxonomy(),
		EquivalentProperty: NewTaxonomy(),
		InverseOf:          NewTaxonomy(),
	}
}

// Register adds a property to the model, returning the stored instance.
// If a property with the same fingerprint already exists, the existing
// instance is returned unchanged.
func (pm *PropertyModel) Register(p *Property) *Property {
	if existing, ok := pm.properties[p.FP]; ok {
		return existing
	}
	pm.properties[p.FP] = p
	return p
}

// Get returns the property with the given fingerprint, or nil if absent.
func (pm *PropertyModel) Get(fp Fingerprint) *Property {
	return pm.properties[fp]
}

// GetByURI returns the property with the given IRI, or nil if absent.
func (pm *PropertyModel) GetByURI(iri string) *Property {
	return pm.properties[NewIRIResource(iri).FP]
}

// Has reports whether a property with the given fingerprint is registered.
func (pm *PropertyModel) Has(fp Fingerprint) bool {
	_, ok := pm.properties[fp]
	return ok
}

// Properties returns every registered property. Order is not guaranteed.
func (pm *PropertyModel) Properties() []*Property {
	out := make([]*Property, 0, len(pm.properties))
	for _, p := range pm.properties {
		out = append(out, p)
	}
	return out
}

// Len returns the number of registered properties.
func (pm *PropertyModel) Len() int {
	return len(pm.properties)
}
