package util

func GetAppName() string {
	return "HankoSign"
}
