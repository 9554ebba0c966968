package ontograph

import "sync"

// baseOnce guards lazy, one-time construction of the BASE (rdf/rdfs/owl/xsd)
// and DC reference ontologies. They are process-wide singletons,
// initialized on first use and never torn down (§5, §9).
var baseOnce sync.Once

var baseClasses []*Class
var baseProperties []*Property

func initBase() {
	baseClasses = []*Class{
		NewClass(RDFSLiteral),
		NewClass(RDFSResource),
		NewClass(RDFSClass),
		NewClass(OWLThing),
		NewClass(OWLNothing),
		NewClass(XSDString),
		NewClass(XSDNormalizedString),
		NewClass(XSDToken),
		NewClass(XSDInteger),
		NewClass(XSDNonNegativeInteger),
		NewClass(XSDPositiveInteger),
		NewClass(XSDNonPositiveInteger),
		NewClass(XSDNegativeInteger),
		NewClass(XSDLong),
		NewClass(XSDInt),
		NewClass(XSDShort),
		NewClass(XSDByte),
		NewClass(XSDDouble),
		NewClass(XSDFloat),
		NewClass(XSDDecimal),
		NewClass(XSDBoolean),
		NewClass(XSDDate),
		NewClass(XSDTime),
		NewClass(XSDDateTime),
		NewClass(XSDAnyURI),
	}
	baseProperties = []*Property{
		NewProperty(RDFSLabel, PropertyAnnotation),
		NewProperty(RDFSComment, PropertyAnnotation),
		NewProperty(RDFSSeeAlso, PropertyAnnotation),
		NewProperty(RDFSIsDefinedBy, PropertyAnnotation),
		NewProperty(OWLVersionInfo, PropertyAnnotation),
		NewProperty(OWLVersionIRI, PropertyAnnotation),
		NewProperty(OWLPriorVersion, PropertyAnnotation),
		NewProperty(OWLBackwardCompatibleWith, PropertyAnnotation),
		NewProperty(OWLIncompatibleWith, PropertyAnnotation),
		NewProperty(OWLImports, PropertyAnnotation),
		NewProperty(DCTitle, PropertyAnnotation),
		NewProperty(DCCreator, PropertyAnnotation),
		NewProperty(DCDescription, PropertyAnnotation),
		NewProperty(DCDate, PropertyAnnotation),
		NewProperty(DCSource, PropertyAnnotation),
	}
}

// ExpandClassModel injects the BASE+DC classes into the class model so
// references to rdfs:Literal, owl:Thing, xsd:string and friends resolve
// during decoding (§3 invariant 6, §4.9 step 1).
func ExpandClassModel(cm *ClassModel) {
	baseOnce.Do(initBase)
	for _, c := range baseClasses {
		cm.Register(c)
	}
}

// UnexpandClassModel removes the BASE+DC classes again so user-visible
// enumerations exclude them (§3 invariant 6).
func UnexpandClassModel(cm *ClassModel) {
	baseOnce.Do(initBase)
	for _, c := range baseClasses {
		delete(cm.classes, c.FP)
	}
}

// ExpandPropertyModel injects the BASE+DC annotation properties into the
// property model.
func ExpandPropertyModel(pm *PropertyModel) {
	baseOnce.Do(initBase)
	for _, p := range baseProperties {
		pm.Register(p)
	}
}

// UnexpandPropertyModel removes the BASE+DC annotation properties again.
func UnexpandPropertyModel(pm *PropertyModel) {
	baseOnce.Do(initBase)
	for _, p := range baseProperties {
		delete(pm.properties, p.FP)
	}
}

// Expand injects BASE+DC resources into both the ontology's class and
// property models. Idempotent.
func (o *Ontology) Expand() {
	if o.expanded {
		return
	}
	ExpandClassModel(o.Classes)
	ExpandPropertyModel(o.Properties)
	o.expanded = true
}

// Unexpand removes BASE+DC resources from both models again. Idempotent.
func (o *Ontology) Unexpand() {
	if !o.expanded {
		return
	}
	UnexpandClassModel(o.Classes)
	UnexpandPropertyModel(o.Properties)
	o.expanded = false
}

// IsBaseClass reports whether the given fingerprint names one of the
// BASE+DC built-in classes.
func IsBaseClass(fp Fingerprint) bool {
	baseOnce.Do(initBase)
	for _, c := range baseClasses {
		if c.FP == fp {
			return true
		}
	}
	return false
}

// IsBaseProperty reports whether the given fingerprint names one of the
// BASE+DC built-in annotation properties.
func IsBaseProperty(fp Fingerprint) bool {
	baseOnce.Do(initBase)
	for _, p := range baseProperties {
		if p.FP == fp {
			return true
		}
	}
	return false
}
