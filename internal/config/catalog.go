package config

import (
	_ "embed"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/hcl"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

//go:embed defaults.hcl
var defaultCatalog []byte

// LoadCatalog returns the built-in probe variants, overlaid with every .hcl
// file below configDir. An empty or missing configDir yields the built-in
// variants only.
func LoadCatalog(configDir string) (*Catalog, error) {
	catalog := &Catalog{}

	if err := catalog.merge("defaults.hcl", defaultCatalog); err != nil {
		return nil, err
	}

	configDir = strings.TrimRight(configDir, "/")
	if configDir == "" {
		return catalog, nil
	}

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		log.WithField("dir", configDir).Debug("config dir does not exist, using built-in probes only")
		return catalog, nil
	}

	if err := catalog.GenerateFromConfigDir(configDir); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (c *Catalog) GenerateFromConfigDir(configDir string) error {
	matches, err := findFilesInPath(configDir)
	if err != nil {
		return errors.Wrapf(err, "failed to search config dir %q", configDir)
	}

	for _, m := range matches {
		log.Debugf("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return errors.Wrapf(err, "failed to read config file %s", m)
		}

		if err := c.merge(m, contents); err != nil {
			return err
		}
	}

	return nil
}

// merge parses one HCL document; variants replace earlier ones with the same name.
func (c *Catalog) merge(source string, contents []byte) error {
	parsed := Catalog{}
	if err := hcl.Unmarshal(contents, &parsed); err != nil {
		return errors.Wrapf(err, "could not parse configuration file %s", source)
	}

	for i := range parsed.Probes {
		p := parsed.Probes[i]
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "invalid probe in %s", source)
		}

		if existing := c.index(p.Name); existing >= 0 {
			log.WithFields(log.Fields{"kind": "config", "name": p.Name, "source": source}).Debug("overriding probe")
			c.Probes[existing] = p
			continue
		}
		c.Probes = append(c.Probes, p)
	}

	return nil
}

func (c *Catalog) index(name string) int {
	for i := range c.Probes {
		if c.Probes[i].Name == name {
			return i
		}
	}
	return -1
}

func (c *Catalog) Lookup(name string) (*Probe, error) {
	i := c.index(name)
	if i < 0 {
		return nil, errors.Errorf("no probe named %q is configured", name)
	}
	return &c.Probes[i], nil
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Probes))
	for i := range c.Probes {
		names = append(names, c.Probes[i].Name)
	}
	sort.Strings(names)
	return names
}
