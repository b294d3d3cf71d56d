package qed

import (
	"fmt"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/batteryspecial/QED/types"
)

// Dictionary holds the registered commands and templates. Entries are
// registered at process start; the dictionary freezes permanently when its
// compiled pattern tables are first built, after which registration attempts
// only record ErrDictionaryFrozen.
//
// Registration problems (empty aliases, duplicate aliases, placeholder
// mismatches) are configuration errors: they are recorded in the error list
// and returned by the registration call, never surfaced at parse time. A
// duplicate alias keeps its first registration.
type Dictionary struct {
	commands   *orderedmap.OrderedMap[string, *types.Command]
	aliasOwner map[string]*types.Command
	templates  []*types.Template
	errs       []error

	compileOnce   sync.Once
	frozen        bool
	commandTable  []types.CompiledPattern
	templateTable []types.CompiledPattern
}

// NewDictionary creates an empty Dictionary and applies the given fluent
// configuration. The Dictionary is nil when a configuration error occurs.
func NewDictionary(configs ...ConfigureDictionaryFunc) (*Dictionary, error) {
	d := &Dictionary{
		commands:   orderedmap.New[string, *types.Command](),
		aliasOwner: map[string]*types.Command{},
	}

	var err error
	for _, config := range configs {
		config(d, &err)
		if err != nil {
			return nil, err
		}
	}

	return d, nil
}

// AddCommand registers a literal command. The first alias is the canonical
// form; aliases already owned by an earlier registration are skipped and
// recorded as ErrDuplicateAlias.
func (d *Dictionary) AddCommand(cmd *types.Command) error {
	if d.frozen {
		return d.addError(types.ErrDictionaryFrozen)
	}
	if cmd == nil || len(cmd.Aliases) == 0 {
		return d.addError(types.ErrNoAliases)
	}
	for _, alias := range cmd.Aliases {
		if alias == "" {
			return d.addError(fmt.Errorf("%w: empty alias", types.ErrNoAliases))
		}
	}
	if owner, taken := d.aliasOwner[cmd.Canonical()]; taken {
		return d.addError(fmt.Errorf("%w: %q owned by %q", types.ErrDuplicateAlias, cmd.Canonical(), owner.Canonical()))
	}

	var err error
	for _, alias := range cmd.Aliases {
		if owner, taken := d.aliasOwner[alias]; taken {
			err = d.addError(fmt.Errorf("%w: %q owned by %q", types.ErrDuplicateAlias, alias, owner.Canonical()))
			continue
		}
		d.aliasOwner[alias] = cmd
	}
	d.commands.Set(cmd.Canonical(), cmd)

	return err
}

// AddTemplate registers a parameterized command after validating its shape
// and that every expanded pattern carries exactly as many placeholders as the
// output template has positional references.
func (d *Dictionary) AddTemplate(tpl *types.Template) error {
	if d.frozen {
		return d.addError(types.ErrDictionaryFrozen)
	}
	if tpl == nil || (len(tpl.Patterns) == 0) == (len(tpl.AliasGroups) == 0) {
		return d.addError(types.ErrTemplateShape)
	}
	for _, group := range tpl.AliasGroups {
		if len(group) == 0 {
			return d.addError(fmt.Errorf("%w: empty alias group", types.ErrTemplateShape))
		}
		for _, alias := range group {
			if alias == "" {
				return d.addError(fmt.Errorf("%w: empty alias", types.ErrTemplateShape))
			}
		}
	}

	refs := outputReferences(tpl.Latex)
	for _, pattern := range templatePatterns(tpl) {
		if err := validatePlaceholders(pattern, refs); err != nil {
			return d.addError(err)
		}
	}
	d.templates = append(d.templates, tpl)

	return nil
}

// Commands returns the registered commands in registration order.
func (d *Dictionary) Commands() []*types.Command {
	commands := make([]*types.Command, 0, d.commands.Len())
	for pair := d.commands.Oldest(); pair != nil; pair = pair.Next() {
		commands = append(commands, pair.Value)
	}

	return commands
}

// Templates returns the registered templates in registration order.
func (d *Dictionary) Templates() []*types.Template {
	return append([]*types.Template(nil), d.templates...)
}

// Errors returns the configuration errors recorded during registration.
func (d *Dictionary) Errors() []error {
	return append([]error(nil), d.errs...)
}

func (d *Dictionary) addError(err error) error {
	d.errs = append(d.errs, err)

	return err
}

// ensureCompiled builds the sorted pattern tables exactly once and freezes
// the dictionary. Safe under concurrent first use.
func (d *Dictionary) ensureCompiled() {
	d.compileOnce.Do(func() {
		d.frozen = true
		d.compile()
	})
}
