package services

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

const saveFolderKey = "save_folder"

// DefaultSaveDirName is the folder created next to the data dir when the
// operator has not chosen one.
const DefaultSaveDirName = "Teklifler"

// Settings is the small persisted key-value store behind the settings menu.
// Today it holds one key: the output folder override. A missing or corrupt
// file is never fatal, it just means defaults.
type Settings struct {
	v    *viper.Viper
	path string
}

// LoadSettings reads the JSON settings file at path. Read errors are
// logged and ignored; the store then answers with defaults.
func LoadSettings(path string) *Settings {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("settings: using defaults (%v)", err)
	}
	return &Settings{v: v, path: path}
}

// SaveFolder returns the configured output folder, falling back to
// "Teklifler" under baseDir when no override is set.
func (s *Settings) SaveFolder(baseDir string) string {
	if folder := s.v.GetString(saveFolderKey); folder != "" {
		return folder
	}
	return filepath.Join(baseDir, DefaultSaveDirName)
}

// SetSaveFolder persists a new output folder override.
func (s *Settings) SetSaveFolder(folder string) error {
	s.v.Set(saveFolderKey, folder)
	return s.v.WriteConfigAs(s.path)
}

// ResetSaveFolder clears the override so SaveFolder answers the default
// again.
func (s *Settings) ResetSaveFolder() error {
	s.v.Set(saveFolderKey, "")
	return s.v.WriteConfigAs(s.path)
}
