package env

type S3Environment struct {
	Bucket          string `validate:"required,min=3"`
	Region          string `validate:"required,min=3"`
	AccessKeyID     string `validate:"required"`
	SecretAccessKey string `validate:"required"`
}
