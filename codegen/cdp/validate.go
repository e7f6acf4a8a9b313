package cdp

import "fmt"

// ValidateReferences checks that every type reference in the compilation
// unit names an existing type definition. The resolver itself is purely
// syntactic, so without this pass a typo in the schema would only surface
// when the generated Go fails to compile.
func ValidateReferences(domains []Domain) error {
	defined := make(map[string]bool)
	for _, d := range domains {
		for _, t := range d.Types {
			defined[d.Name+"."+t.ID] = true
		}
	}

	check := func(ref, currentDomain, entity, property string) error {
		if ref == "" {
			return nil
		}
		domain, name := SplitRef(ref)
		if domain == "" {
			domain = currentDomain
		}
		if !defined[domain+"."+name] {
			return fmt.Errorf("unresolved reference %q in %s.%s, property %q",
				ref, currentDomain, entity, property)
		}
		return nil
	}

	checkProps := func(props []Property, currentDomain, entity string) error {
		for _, p := range props {
			if err := check(p.TypeRef, currentDomain, entity, p.WireName); err != nil {
				return err
			}
			if p.Items != nil {
				if err := check(p.Items.TypeRef, currentDomain, entity, p.WireName); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, d := range domains {
		for _, t := range d.Types {
			if t.Items != nil {
				if err := check(t.Items.TypeRef, d.Name, t.ID, "items"); err != nil {
					return err
				}
			}
			if err := checkProps(t.Properties, d.Name, t.ID); err != nil {
				return err
			}
		}
		for _, c := range d.Commands {
			if err := checkProps(c.Parameters, d.Name, c.Name); err != nil {
				return err
			}
			if err := checkProps(c.Returns, d.Name, c.Name); err != nil {
				return err
			}
		}
		for _, e := range d.Events {
			if err := checkProps(e.Parameters, d.Name, e.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateEventTags checks that event tags are unique across the whole
// compilation unit. A duplicate tag would silently shadow another domain's
// entry in the generated event registry.
func ValidateEventTags(domains []Domain) error {
	seen := make(map[string]string)
	for _, d := range domains {
		for _, e := range d.Events {
			tag := e.Tag()
			if owner, dup := seen[tag]; dup {
				return fmt.Errorf("duplicate event tag %q declared by domains %s and %s",
					tag, owner, d.Name)
			}
			seen[tag] = d.Name
		}
	}
	return nil
}
