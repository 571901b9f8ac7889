package defaults

import "github.com/sahib/config"

// DefaultsV0 is the default config validation for termpasshash
var DefaultsV0 = config.DefaultMapping{
	"argon2": config.DefaultMapping{
		"memory_kib": config.DefaultEntry{
			Default:      2097152,
			NeedsRestart: false,
			Docs:         "Memory cost of argon2id in KiB. Changing it changes every hash.",
			Validator:    config.IntRangeValidator(8, 4294967295),
		},
		"time": config.DefaultEntry{
			Default:      1,
			NeedsRestart: false,
			Docs:         "Number of argon2id passes over the memory. Changing it changes every hash.",
			Validator:    config.IntRangeValidator(1, 4294967295),
		},
		"threads": config.DefaultEntry{
			Default:      1,
			NeedsRestart: false,
			Docs:         "Parallelism of argon2id. Changing it changes every hash.",
			Validator:    config.IntRangeValidator(1, 255),
		},
		"key_len": config.DefaultEntry{
			Default:      1024,
			NeedsRestart: false,
			Docs:         "Length of the raw argon2id output in bytes, before base64 encoding.",
			Validator:    config.IntRangeValidator(1, 1048576),
		},
	},
	"legacy": config.DefaultMapping{
		"default_rounds": config.DefaultEntry{
			Default:      0,
			NeedsRestart: false,
			Docs:         "Rounds used in legacy mode when --rounds is not given (0: ask every time).",
			Validator:    config.IntRangeValidator(0, 2147483647),
		},
	},
	"output": config.DefaultMapping{
		"default_max_length": config.DefaultEntry{
			Default:      0,
			NeedsRestart: false,
			Docs:         "Number of characters to keep when --max-length is not given (0: ask every time).",
			Validator:    config.IntRangeValidator(0, 2147483647),
		},
	},
	"prompt": config.DefaultMapping{
		"min_entropy": config.DefaultEntry{
			Default:      0,
			NeedsRestart: false,
			Docs:         "Minimum zxcvbn entropy in whole bits of a new password in --create mode (0: no minimum).",
			Validator:    config.IntRangeValidator(0, 1000),
		},
	},
	"clipboard": config.DefaultMapping{
		"wait_for_key": config.DefaultEntry{
			Default:      true,
			NeedsRestart: false,
			Docs:         "Wait for enter and clear the clipboard again after copying the hash.",
		},
	},
}
