// adminctl 管理员账号运维工具：创建账号 / 重置口令。
// 线上不再自动预置默认管理员，账号只能从这里显式创建。
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/prestigedrive/prestigedrive/internal/admin"
	"github.com/prestigedrive/prestigedrive/internal/common/config"
	"github.com/prestigedrive/prestigedrive/internal/common/db"
)

var (
	configPath = flag.String("config", "configs/server.json", "配置文件路径")
	username   = flag.String("username", "", "管理员用户名")
	reset      = flag.Bool("reset", false, "重置已有账号的口令（默认为创建新账号）")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	if strings.TrimSpace(*username) == "" {
		fmt.Fprintln(os.Stderr, "usage: adminctl -username <name> [-reset]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if v := os.Getenv("PRESTIGEDRIVE_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init mysql: %v\n", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(&admin.AdminUser{}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to migrate mysql schema: %v\n", err)
		os.Exit(1)
	}

	password, err := readPassword()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read password: %v\n", err)
		os.Exit(1)
	}

	svc := admin.NewService(admin.NewRepo(gormDB), cfg.Auth)
	ctx := context.Background()

	if *reset {
		if err := svc.ResetPassword(ctx, *username, password); err != nil {
			fmt.Fprintf(os.Stderr, "reset password failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("password reset for %s\n", *username)
		return
	}

	u, err := svc.Register(ctx, *username, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create admin failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin created: %s (%s)\n", u.Username, u.ID)
}

// readPassword 从环境变量或标准输入读取口令（两次输入需一致）。
func readPassword() (string, error) {
	if v := os.Getenv("PRESTIGEDRIVE_ADMIN_PASSWORD"); v != "" {
		return v, nil
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("password: ")
	first, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	fmt.Print("confirm password: ")
	second, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	first = strings.TrimRight(first, "\r\n")
	second = strings.TrimRight(second, "\r\n")
	if first != second {
		return "", fmt.Errorf("passwords do not match")
	}
	return first, nil
}
