package domain

// ParameterTable maps checker names to their configured parameters, as
// loaded from the `parameters` key of the config file.
type ParameterTable map[string]Params

// For resolves the parameters for a checker by exact name match. An absent
// entry resolves to an empty Params; resolution never fails.
func (t ParameterTable) For(name string) Params {
	if p, ok := t[name]; ok && p != nil {
		return p
	}
	return Params{}
}
