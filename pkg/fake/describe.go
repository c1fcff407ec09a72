package fake

import "sort"

// ParamInfo describes one declared parameter of a generator.
type ParamInfo struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
	Optional    bool   `json:"optional,omitempty"`
	Description string `json:"description,omitempty"`
}

// Description is generator metadata exposed to discovery endpoints.
type Description struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Example     string      `json:"example,omitempty"`
	Output      string      `json:"output"`
	Params      []ParamInfo `json:"params,omitempty"`
}

// Describe returns metadata for a concrete generator name.
func (r *Registry) Describe(name string) (Description, bool) {
	info, ok := surfaceInfos[name]
	if !ok {
		return Description{}, false
	}

	desc := Description{
		Name:        name,
		Category:    info.Category,
		Description: info.Description,
		Example:     info.Example,
		Output:      info.Output,
	}
	for _, param := range info.Params {
		desc.Params = append(desc.Params, ParamInfo{
			Field:       param.Field,
			Type:        param.Type,
			Default:     param.Default,
			Optional:    param.Optional,
			Description: param.Description,
		})
	}
	return desc, true
}

// Categories returns every generator category on the surface, sorted.
func (r *Registry) Categories() []string {
	set := make(map[string]struct{})
	for _, info := range surfaceInfos {
		if info.Category != "" {
			set[info.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for category := range set {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// NamesByCategory returns the sorted generator names in one category.
func (r *Registry) NamesByCategory(category string) []string {
	var out []string
	for _, name := range surfaceNames {
		if surfaceInfos[name].Category == category {
			out = append(out, name)
		}
	}
	return out
}
