/*
Package rdytbl implements the two-level “ready table” used by small fixed
priority real-time kernels to find the highest priority ready task in constant
time, without scanning.

There are 64 priority levels, numbered 0 to 63, where a lower number means a
higher priority. Priority 63 ([IdlePriority]) belongs to the idle task, which
is always ready and cannot be disabled, so a [ReadySet] is never empty.

A ReadySet keeps two levels of bit masks: eight row masks with one bit per
priority, and the group mask with one bit per row that has at least one ready
priority. [ReadySet.Enable] and [ReadySet.Disable] keep both levels in sync,
while [ReadySet.HighestReady] decodes the lowest set bit of the group mask and
then of the selected row mask using a precomputed lookup table.

  - [Dispatcher] tracks the currently selected priority and reports priority
    switches whenever the caller asks it to [Dispatcher.Schedule].
  - [Observer] receives task state changes and switches, for instance for
    logging them using [LogObserver].
  - [Synchronized] guards a ReadySet and its Dispatcher for concurrent use.
  - [List] represents priorities in textual list form, such as “5,8-10,63”.
*/
package rdytbl
