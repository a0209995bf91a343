package plugin

import (
	"fmt"
	"sort"
)

// AndroidExtensionName is the extension name registered by the Android
// application and library plugins.
const AndroidExtensionName = "android"

// KotlinExtensionName is the extension name registered by the Kotlin
// Android plugin.
const KotlinExtensionName = "kotlin"

// LegacyMaxCompileSDK is the highest API level pre-7.0 Android plugins
// can compile against.
const LegacyMaxCompileSDK = 30

// AndroidExtension is the "android" block of the modern Android plugins.
type AndroidExtension struct {
	CompileSDK int
	MinSDK     int
	Namespace  string
}

// ExtensionName implements project.Extension.
func (e *AndroidExtension) ExtensionName() string { return AndroidExtensionName }

// CompileVersion implements project.VersionReporter.
func (e *AndroidExtension) CompileVersion() int { return e.CompileSDK }

// SetCompileVersion implements project.VersionConfigurable.
func (e *AndroidExtension) SetCompileVersion(level int) error {
	if level < 1 {
		return fmt.Errorf("invalid compile SDK %d", level)
	}
	e.CompileSDK = level
	return nil
}

// Configure applies the settings from a workspace extension block.
func (e *AndroidExtension) Configure(settings map[string]interface{}) error {
	for key, v := range settings {
		switch key {
		case "compile_sdk":
			n, err := intSetting(key, v)
			if err != nil {
				return err
			}
			e.CompileSDK = n
		case "min_sdk":
			n, err := intSetting(key, v)
			if err != nil {
				return err
			}
			e.MinSDK = n
		case "namespace":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("%s: expected string, got %T", key, v)
			}
			e.Namespace = s
		default:
			return fmt.Errorf("unknown android setting %q", key)
		}
	}
	return nil
}

// LegacyAndroidExtension is the "android" block of Android plugins older
// than 7.0. It cannot target API levels above LegacyMaxCompileSDK.
type LegacyAndroidExtension struct {
	AndroidExtension
	PluginVersion string
}

// SetCompileVersion implements project.VersionConfigurable.
func (e *LegacyAndroidExtension) SetCompileVersion(level int) error {
	if level > LegacyMaxCompileSDK {
		return fmt.Errorf("android plugin %s supports compile SDK up to %d, got %d",
			e.PluginVersion, LegacyMaxCompileSDK, level)
	}
	return e.AndroidExtension.SetCompileVersion(level)
}

// KotlinExtension is the "kotlin" block. It has no compile SDK.
type KotlinExtension struct {
	JVMTarget string
}

// ExtensionName implements project.Extension.
func (e *KotlinExtension) ExtensionName() string { return KotlinExtensionName }

// Configure applies the settings from a workspace extension block.
func (e *KotlinExtension) Configure(settings map[string]interface{}) error {
	for key, v := range settings {
		if key != "jvm_target" {
			return fmt.Errorf("unknown kotlin setting %q", key)
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s: expected string, got %T", key, v)
		}
		e.JVMTarget = s
	}
	return nil
}

// OpaqueExtension stands in for extensions of plugins the catalog does not
// model. It keeps its settings verbatim and exposes no capabilities.
type OpaqueExtension struct {
	Name     string
	PluginID string
	Settings map[string]interface{}
}

// ExtensionName implements project.Extension.
func (e *OpaqueExtension) ExtensionName() string { return e.Name }

// Configure stores the settings verbatim.
func (e *OpaqueExtension) Configure(settings map[string]interface{}) error {
	if e.Settings == nil {
		e.Settings = make(map[string]interface{}, len(settings))
	}
	for k, v := range settings {
		e.Settings[k] = v
	}
	return nil
}

// SettingKeys returns the stored setting keys in sorted order.
func (e *OpaqueExtension) SettingKeys() []string {
	keys := make([]string, 0, len(e.Settings))
	for k := range e.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func intSetting(key string, v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%s: expected integer, got %v", key, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s: expected integer, got %T", key, v)
	}
}
