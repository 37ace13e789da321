package testutil

// ShooterModulesHCL is a small module graph shared by the integration tests.
//
// Resolving TestShooter yields, in order:
// Core, CoreUObject, Engine, InputCore, EnhancedInput, TestShooter.
const ShooterModulesHCL = `
module "Core" {}

module "CoreUObject" {
  public_dependencies = ["Core"]
}

module "Engine" {
  public_dependencies = ["Core", "CoreUObject"]
}

module "InputCore" {
  public_dependencies = ["Core"]
}

module "EnhancedInput" {
  public_dependencies  = ["InputCore"]
  private_dependencies = ["Engine"]
}

module "OnlineSubsystem" {
  public_dependencies = ["Core"]
}

module "TestShooter" {
  public_dependencies  = ["Core", "Engine"]
  private_dependencies = ["EnhancedInput"]
}
`

// ShooterModuleOrder is the resolved order of TestShooter in ShooterModulesHCL.
var ShooterModuleOrder = []string{"Core", "CoreUObject", "Engine", "InputCore", "EnhancedInput", "TestShooter"}
