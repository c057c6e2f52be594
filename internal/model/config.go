package model

type Config struct {
	DataDir string `yaml:"data_dir"`
	Editor  string `yaml:"editor"`
	Backup  struct {
		Enable    bool   `yaml:"enable"`
		Retention int    `yaml:"retention"`
		BackupDir string `yaml:"backup_dir"`
	}
	Trash struct {
		Retention int `yaml:"retention"`
	}
	Sync struct {
		Enable     bool   `yaml:"enable"`
		Bucket     string `yaml:"bucket"`
		AWSProfile string `yaml:"aws_profile"`
		AWSRegion  string `yaml:"aws_region"`
	}
	Server struct {
		Addr string `yaml:"addr"`
	}
}

func DefaultConfig() Config {
	cfg := Config{
		DataDir: "~/.config/tsk/data",
		Editor:  "vim",
	}
	cfg.Backup.Enable = true
	cfg.Backup.Retention = 30
	cfg.Backup.BackupDir = "~/.config/tsk/backup"
	cfg.Trash.Retention = 14
	cfg.Server.Addr = "127.0.0.1:7621"
	return cfg
}
